package main

import (
	"fmt"
	"net/http"
	"time"
)

// Polls the contacts endpoint until the service answers, so that dependent
// tools can be started in order.
func main() {
	totalWaitTime := 0
	for {
		res, err := http.Get("http://localhost:8080/contacts")
		if err == nil {
			if res.StatusCode == http.StatusOK {
				fmt.Println(res)
				break
			}
			fmt.Println(res)
		} else {
			fmt.Println(err)
		}
		totalWaitTime += 5
		fmt.Printf("Waiting %d seconds", totalWaitTime)
		fmt.Println()
		time.Sleep(5 * time.Second)
	}
}
