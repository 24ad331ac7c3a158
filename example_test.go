package httpone

import (
	"errors"
	"fmt"
)

func ExampleClient() {
	cl := &Client{}
	resp, err := cl.Get("httpbin.org", "/get", Header{
		"User-Agent": {"httpone/1.0"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s (code %d)\n", resp.StatusLine, resp.StatusCode)
	fmt.Println(resp.Body)
}

func ExamplePost() {
	resp, err := Post("httpbin.org", "/post", `{"a":1}`, nil)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			// the parsed response still travels with the error
			fmt.Println("server said:", statusErr.Code, statusErr.Response.Body)
			return
		}
		fmt.Println(err)
		return
	}
	fmt.Println(resp.StatusLine)
}
