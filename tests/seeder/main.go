// Seeder fires concurrent signup/order traffic at a running instance.
// Useful for smoke testing the full stack with postgres and kafka up.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	baseURL = flag.String("url", "http://localhost:8080", "api base url")
	workers = flag.Int("workers", 4, "concurrent workers")
	orders  = flag.Int("orders", 20, "orders per worker")
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone_number"`
	Address  string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type principalResponse struct {
	CustomerID string `json:"customer_id"`
}

type orderRequest struct {
	CustomerID  string `json:"customer_id"`
	TotalAmount string `json:"total_amount"`
	Notes       string `json:"notes"`
}

func main() {
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	g, ctx := errgroup.Group{}, ctx
	for i := 0; i < *workers; i++ {
		worker := i
		g.Go(func() error {
			return runWorker(ctx, worker)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("seeder failed: %v", err)
	}
	log.Printf("seeded %d orders", *workers**orders)
}

func runWorker(ctx context.Context, worker int) error {
	client := &http.Client{Timeout: 10 * time.Second}
	email := fmt.Sprintf("seed-%d-%d@example.com", worker, rand.Intn(1_000_000))

	if err := post(ctx, client, "/api/auth/signup", signupRequest{
		Email:    email,
		Password: "seedpassword",
		Phone:    fmt.Sprintf("+2547%08d", rand.Intn(100_000_000)),
		Address:  "1 Seeder Lane",
	}, "", nil); err != nil {
		return fmt.Errorf("signup: %w", err)
	}

	var login loginResponse
	if err := post(ctx, client, "/api/auth/login", loginRequest{Email: email, Password: "seedpassword"}, "", &login); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	var principal principalResponse
	if err := get(ctx, client, "/api/auth/test-token", login.Token, &principal); err != nil {
		return fmt.Errorf("test-token: %w", err)
	}

	for i := 0; i < *orders; i++ {
		order := orderRequest{
			CustomerID:  principal.CustomerID,
			TotalAmount: fmt.Sprintf("%d.%02d", rand.Intn(500), rand.Intn(100)),
			Notes:       fmt.Sprintf("seeder worker %d order %d", worker, i),
		}
		if err := post(ctx, client, "/api/orders", order, login.Token, nil); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
	}
	return nil
}

func post(ctx context.Context, client *http.Client, path string, body any, token string, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, *baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return do(client, req, token, out)
}

func get(ctx context.Context, client *http.Client, path string, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, *baseURL+path, nil)
	if err != nil {
		return err
	}
	return do(client, req, token, out)
}

func do(client *http.Client, req *http.Request, token string, out any) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("%s %s: %s: %s", req.Method, req.URL.Path, res.Status, msg)
	}
	if out != nil {
		return json.NewDecoder(res.Body).Decode(out)
	}
	return nil
}
