// Package sendgrid provides a client library for the SendGrid mail send API.
//
// The library covers the v3 JSON API as well as the legacy form-encoded API.
// A message is assembled through a chainable builder, serialized into the
// wire format of the chosen API version, and dispatched with a bearer
// credential; responses outside the 2xx range are classified into typed
// errors.
//
// # Basic Usage
//
//	client, err := sendgrid.New(os.Getenv("SENDGRID_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	message := sendgrid.NewMessage(sendgrid.NewEmail("noreply@example.com")).
//		SetSubject("Welcome").
//		AddPersonalization(sendgrid.NewPersonalization(sendgrid.NewEmail("user@example.com"))).
//		AddContent(sendgrid.NewContent().SetContentType("text/plain").SetValue("Welcome!"))
//
//	resp, err := client.Send(context.Background(), message)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer resp.Body.Close()
//
// # Asynchronous Sends
//
// AsyncClient performs the HTTP exchange without occupying the calling
// goroutine:
//
//	client, err := sendgrid.NewAsync(os.Getenv("SENDGRID_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	result := <-client.Send(ctx, message)
//
// # Features
//
//   - v3 JSON API: personalizations, attachments, dynamic templates,
//     tracking and mail settings, unsubscribe groups
//   - Legacy form-encoded API
//   - Blocking and asynchronous client variants
//   - Typed error classification, no internal retries
//   - Distributed tracing with OpenTelemetry
//   - Context-aware operations
//   - Thread-safe operations
package sendgrid
