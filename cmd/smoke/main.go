// smoke drives the main API flow against a running instance: login, load the
// comparison catalog, toggle a selection, generate quote text, log out.
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

var baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
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

func main() {
	if v := os.Getenv("SMOKE_BASE_URL"); v != "" {
		baseURL = v
	}
	username := os.Getenv("SMOKE_USERNAME")
	password := os.Getenv("SMOKE_PASSWORD")
	if username == "" || password == "" {
		color.Red("SMOKE_USERNAME and SMOKE_PASSWORD must be set")
		os.Exit(1)
	}

	color.Cyan("🚀 Starting API smoke run\n")

	// 1. Login
	color.Yellow("\n1. Login")
	resp, body, err := sendRequest("POST", "/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	var loginResp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	json.Unmarshal(body, &loginResp)
	token := loginResp.Data.Token
	if token == "" {
		color.Red("No token in login response")
		os.Exit(1)
	}

	// 2. Load comparison catalog
	color.Yellow("\n2. Load comparison catalog")
	resp, body, err = sendRequest("GET", "/catalog/compare", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	var catalogResp struct {
		Data struct {
			Products []struct {
				Id string `json:"id"`
			} `json:"products"`
		} `json:"data"`
	}
	json.Unmarshal(body, &catalogResp)
	if len(catalogResp.Data.Products) == 0 {
		color.Red("Catalog came back empty")
		os.Exit(1)
	}
	color.Green("%d products", len(catalogResp.Data.Products))

	// 3. Toggle first two products into the selection
	color.Yellow("\n3. Toggle selection")
	for _, p := range catalogResp.Data.Products[:min(2, len(catalogResp.Data.Products))] {
		resp, body, err = sendRequest("POST", "/selection/compare/toggle", token, map[string]string{
			"product_id": p.Id,
		})
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		color.Green("Toggled %s: %s", p.Id, resp.Status)
	}

	// 4. Generate quote text
	color.Yellow("\n4. Generate quote text")
	resp, body, err = sendRequest("POST", "/catalog/quote", token, map[string]string{
		"catalog": "compare",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var quoteResp map[string]interface{}
	json.Unmarshal(body, &quoteResp)
	prettyPrint(quoteResp)

	// 5. Logout
	color.Yellow("\n5. Logout")
	resp, _, err = sendRequest("POST", "/auth/logout", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	color.Cyan("\n✅ Smoke run complete")
}
