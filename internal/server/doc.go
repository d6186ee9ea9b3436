// Package server implements the patchd daemon.
//
// The daemon listens on a Unix domain socket for JSON-encoded commands from
// the patchd CLI or a build engine. Each connection carries a single
// request-response exchange: the client sends a newline-delimited JSON
// envelope, the server dispatches the command, and writes the result back
// before closing the connection.
//
// The daemon keeps the override registry loaded in an [overrides.Store].
// Every request works against the snapshot that is current when it arrives,
// so a reload (requested explicitly or triggered by a file change) never
// affects a request in flight.
//
// Example usage:
//
//	srv, err := server.New(server.Config{
//	    Store: store,
//	    Watch: true,
//	})
//	if err != nil {
//	    return err
//	}
//
//	if err := srv.Start(); err != nil {
//	    return err
//	}
//	defer srv.Stop()
//
//	srv.Wait()
package server
