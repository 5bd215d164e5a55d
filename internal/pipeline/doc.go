// Package pipeline provides a framework for executing analysis steps in
// sequence.
//
// The pipeline pattern is used to process pages through multiple stages:
// non-content classification, content extraction, and scoring with
// recommendation generation. Each stage is implemented as a Step that
// receives the current analysis and can modify it.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because:
// 1. It allows easy addition/removal of steps without modifying core logic
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context between steps
// 4. It enables potential parallelization of independent steps in the future
//
// The pipeline supports both individual analyses and batch processing with
// concurrency control using errgroup. The core packages stay directly
// callable without the pipeline; this is plumbing, not policy.
package pipeline
