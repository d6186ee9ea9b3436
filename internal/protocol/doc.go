// Package protocol defines the messages exchanged between the patchd CLI and
// daemon.
//
// Every message is an [Envelope]: a protocol version, a command name and a
// JSON payload, encoded as a single line. Requests carry the command being
// invoked; responses carry [CmdOK] with the command's result or [CmdError]
// with an [ErrorResult].
package protocol
