// Package interviewctx bounds a growing mock-interview transcript to a fixed
// token budget before it reaches the language model that drives the
// interviewer persona.
//
// The caller holds the authoritative transcript. On each call the Engine
// decides what to keep verbatim, what to compress into a summary, and how to
// degrade when compression itself fails:
//
//	engine, err := interviewctx.New(generator, nil, logger)
//	if err != nil {
//	    return err
//	}
//	cc := engine.BuildConversationContext(ctx, transcript)
//	prompt := cc.FormatForInstructions()
//
// Transcripts below the compaction threshold pass through untouched. Above
// it, the most recent turns are preserved byte for byte and everything older
// is summarized through a text-generation collaborator, with a deterministic
// local digest as the fallback when that call fails. Content is never
// silently dropped: a transcript too short to split passes through whole even
// when it exceeds the threshold.
//
// # Collaborators
//
// The external text-generation service is abstracted behind the
// TextGenerator interface; package anthropic provides the production
// implementation. The upstream transcript store is abstracted behind
// store.TranscriptStore, with pgx, database/sql, and in-memory adapters.
// Package session wires store and engine together for the live-interview
// pipeline, package monitor exposes budget telemetry over HTTP, and package
// events publishes compaction telemetry to NATS.
//
// # Concurrency
//
// The Engine holds no mutable state: every build receives its transcript as
// an argument and returns a fresh ConversationContext value. Concurrent
// builds for the same interview session are independent; callers who want to
// deduplicate the redundant summarization work can use session.Manager,
// which guards in-flight builds per session.
package interviewctx
