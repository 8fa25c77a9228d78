// Package journalsdk is a Go client for the journal service.
//
// # Overview
//
// A Client covers the public routes: registration, login and the health
// probes. Register and Login return a Session that carries the bearer token
// for the authenticated routes, the automated reviewer included.
//
//	client := journalsdk.NewClient("http://localhost:5555")
//
//	session, _, err := client.Register(ctx, journalsdk.RegisterRequest{
//		Email:    "ada@example.com",
//		Name:     "Ada",
//		Password: "correct horse",
//	})
//	if err != nil {
//		return err
//	}
//
//	paper, err := session.SubmitPaper(ctx, journalsdk.SubmitPaperRequest{
//		Title:   "On Numbers",
//		Authors: []string{"Ada"},
//	})
//
// # Errors
//
// Every non-2xx response becomes an *APIError. Compare against the
// predefined values with errors.Is:
//
//	_, _, err := client.Login(ctx, email, "wrong")
//	if errors.Is(err, journalsdk.ErrInvalidCredentials) {
//		// ...
//	}
//
// The same types are used by the server to write its responses, so the
// request and response structs here are the wire format.
package journalsdk
