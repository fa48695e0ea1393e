// Package workflow drives submitted analysis jobs through the pipeline
// stages.
//
// The Manager runs one worker per allowed concurrent job. Each worker
// takes the next pending job from the queue, runs the analyze stage (the
// parser pass over the screenplay) and the index stage (writing the
// breakdowns into the run store), and settles the job as completed or
// failed. Workers wake on submission notifications and otherwise poll on
// the configured interval; shutdown is cooperative through the context
// handed to Start.
package workflow
