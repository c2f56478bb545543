// Package logging provides structured JSON logging to a rotating file,
// plus the viewer behind the logs command.
//
// textmark is a filter: stdout carries sliced text and stderr carries user
// messages, so log records go to ~/.textmark/logs/textmark.log and stay off
// both streams. The --debug flag raises the level to debug and additionally
// echoes records to stderr.
package logging
