package config_test

import (
	"fmt"
	"time"

	"github.com/mj1618/pinwin/internal/config"
)

// Example of creating a default configuration
func ExampleDefault() {
	cfg := config.Default()
	fmt.Println("Poll Interval:", cfg.Poll.Interval)
	fmt.Println("Transport:", cfg.Serve.Transport)
	fmt.Println("Cache TTL:", cfg.Serve.CacheTTL)
	fmt.Println("Journal:", cfg.Journal.Enabled)
	// Output:
	// Poll Interval: 500ms
	// Transport: stdio
	// Cache TTL: 500ms
	// Journal: false
}

// Example of setting poll interval with validation
func ExampleConfig_SetPollInterval() {
	cfg := config.Default()

	if err := cfg.SetPollInterval(2 * time.Second); err != nil {
		fmt.Println("Error:", err)
	} else {
		fmt.Println("Poll interval set to:", cfg.Poll.Interval)
	}

	if err := cfg.SetPollInterval(10 * time.Millisecond); err != nil {
		fmt.Println("Error:", err)
	}

	// Output:
	// Poll interval set to: 2s
	// Error: poll interval cannot be less than 100ms
}

// Example of validating configuration
func ExampleConfig_Validate() {
	cfg := config.Default()

	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
	} else {
		fmt.Println("Configuration is valid")
	}

	// Output:
	// Configuration is valid
}
