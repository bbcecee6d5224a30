package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// entryRequest is the credit/debit payload the API expects
type entryRequest struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	DateTime string `json:"dateTime"`
	Amount   string `json:"amount"`
}

// requestResult contains metrics for a single request
type requestResult struct {
	Success      bool
	Rejected     bool // insufficient funds, a valid business outcome
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// runStats contains aggregated load test statistics
type runStats struct {
	TotalRequests      int
	SuccessfulRequests int
	RejectedRequests   int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// scenario is one weighted request shape
type scenario struct {
	Name   string
	Path   string
	Amount string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	clients := flag.Int("clients", 3, "Number of distinct client accounts to spread load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	seedAmount := flag.String("seed", "1000.00", "Initial credit per client before the run")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	scenarios := []scenario{
		{"Credit Small", "/api/v1/credit", "10.00"},
		{"Credit Medium", "/api/v1/credit", "20.00"},
		{"Credit Large", "/api/v1/credit", "30.00"},
		{"Debit Small", "/api/v1/debit", "15.00"},
		{"Debit Medium", "/api/v1/debit", "40.00"},
		{"Debit Large", "/api/v1/debit", "60.00"},
	}

	clientIDs := make([]uuid.UUID, *clients)
	for i := range clientIDs {
		clientIDs[i] = uuid.New()
	}

	fmt.Printf("Load testing ledger API across %d clients\n", len(clientIDs))
	fmt.Printf("Request scenarios: %d different combinations\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	// Seed every client so debits have funds to contend for.
	httpClient := &http.Client{Timeout: 10 * time.Second}
	for _, clientID := range clientIDs {
		if err := sendEntry(httpClient, *baseURL+"/api/v1/credit", clientID, *seedAmount); err != nil {
			fmt.Printf("Failed to seed client %s: %v\n", clientID, err)
			return
		}
	}

	stats := &runStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan requestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, clientIDs, scenarios, jobs, results, stats)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range results {
			stats.Lock.Lock()
			switch {
			case result.Success:
				stats.SuccessfulRequests++
			case result.Rejected:
				stats.RejectedRequests++
			default:
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	wg.Wait()
	close(results)
	<-done

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func sendEntry(client *http.Client, url string, clientID uuid.UUID, amount string) error {
	payload := entryRequest{
		ID:       uuid.NewString(),
		ClientID: clientID.String(),
		DateTime: time.Now().UTC().Format(time.RFC3339),
		Amount:   amount,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return nil
}

func worker(baseURL string, delayMs int, clientIDs []uuid.UUID,
	scenarios []scenario, jobs <-chan int, results chan<- requestResult, stats *runStats) {

	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		clientID := clientIDs[rand.Intn(len(clientIDs))]
		sc := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.ScenarioStats[sc.Name]++
		stats.Lock.Unlock()

		payload := entryRequest{
			ID:       uuid.NewString(),
			ClientID: clientID.String(),
			DateTime: time.Now().UTC().Format(time.RFC3339),
			Amount:   sc.Amount,
		}
		body, err := json.Marshal(payload)
		if err != nil {
			results <- requestResult{Error: err}
			continue
		}

		startTime := time.Now()
		resp, err := client.Post(baseURL+sc.Path, "application/json", bytes.NewReader(body))
		responseTime := time.Since(startTime)

		result := requestResult{ResponseTime: responseTime}
		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			switch {
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				result.Success = true
			case resp.StatusCode == http.StatusBadRequest:
				// Insufficient funds: the engine is doing its job.
				result.Rejected = true
			default:
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			resp.Body.Close()
		}

		results <- result
	}
}

func printResults(stats *runStats) {
	completed := stats.SuccessfulRequests + stats.RejectedRequests
	rawTps := float64(completed) / stats.TotalTime.Seconds()
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sorted := make([]time.Duration, len(stats.ResponseTimes))
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		p50 = sorted[len(sorted)*50/100]
		p90 = sorted[len(sorted)*90/100]
		p95 = sorted[len(sorted)*95/100]
		p99 = sorted[len(sorted)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Rejected (no funds): %d (%.1f%%)\n", stats.RejectedRequests,
		float64(stats.RejectedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Processed TPS:       %.2f (completed requests / total time)\n", rawTps)
	fmt.Printf("Offered TPS:         %.2f (all requests / total time)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	total := 0
	for _, count := range stats.ScenarioStats {
		total += count
	}
	for name, count := range stats.ScenarioStats {
		if count > 0 {
			fmt.Printf("%-15s: %d requests (%.1f%%)\n", name, count,
				float64(count)/float64(total)*100)
		}
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
}
