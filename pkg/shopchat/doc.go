// Package shopchat is the Go client for the shopchat query pipeline.
//
// The client talks to the query service for question answering and,
// when a gateway URL is configured, to the gateway for direct method
// dispatch.
//
//	c := shopchat.New("http://localhost:8002",
//		shopchat.WithGatewayURL("http://localhost:8001"),
//	)
//	answer, err := c.Ask(ctx, "nike running shoes for men under $100")
package shopchat
