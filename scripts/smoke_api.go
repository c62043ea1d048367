package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Walks the seeded acme tenant through the whole surface: login, notes up
// to the FREE ceiling, the upgrade, and one note past it.
// Run against a freshly seeded database.

func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func step(name string) {
	color.Cyan("\n=== %s ===", name)
}

func must(err error) {
	if err != nil {
		color.Red("FATAL: %v", err)
		os.Exit(1)
	}
}

func report(resp *http.Response, body []byte) {
	if resp.StatusCode < 400 {
		color.Green("HTTP %d", resp.StatusCode)
	} else {
		color.Yellow("HTTP %d", resp.StatusCode)
	}
	var parsed map[string]interface{}
	if json.Unmarshal(body, &parsed) == nil {
		prettyPrint(parsed)
	} else {
		fmt.Println(string(body))
	}
}

func main() {
	step("Login as acme admin")
	resp, body, err := sendRequest("POST", "/auth/login", "", map[string]string{
		"email":    "admin@acme.test",
		"password": "password",
	})
	must(err)
	report(resp, body)

	var login struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	must(json.Unmarshal(body, &login))
	token := login.Data.Token
	if token == "" {
		color.Red("no token in login response, is the database seeded?")
		os.Exit(1)
	}

	step("Who am I")
	resp, body, err = sendRequest("GET", "/auth/me", token, nil)
	must(err)
	report(resp, body)

	step("Create notes up to the FREE ceiling")
	for i := 1; i <= 3; i++ {
		resp, body, err = sendRequest("POST", "/notes", token, map[string]string{
			"title":   fmt.Sprintf("Smoke note %d", i),
			"content": "created by the smoke script",
		})
		must(err)
		report(resp, body)
	}

	step("Fourth note should bounce with NOTE_LIMIT_REACHED")
	resp, body, err = sendRequest("POST", "/notes", token, map[string]string{
		"title":   "Smoke note 4",
		"content": "one past the ceiling",
	})
	must(err)
	report(resp, body)

	step("Upgrade acme to PRO")
	resp, body, err = sendRequest("POST", "/tenants/acme/upgrade", token, nil)
	must(err)
	report(resp, body)

	step("Fourth note should land now")
	resp, body, err = sendRequest("POST", "/notes", token, map[string]string{
		"title":   "Smoke note 4",
		"content": "created after the upgrade",
	})
	must(err)
	report(resp, body)

	step("List everything")
	resp, body, err = sendRequest("GET", "/notes", token, nil)
	must(err)
	report(resp, body)

	color.Green("\nSmoke run complete")
}
