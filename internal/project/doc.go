// Package project models a multi-project Android build: a root project, its
// subprojects, the named extensions plugins attach to them, the deferred
// after-evaluate hooks, and the task registry. Evaluation is sequential and
// single-threaded; each project only mutates its own state.
package project
