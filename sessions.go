package main

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/promptpilot/prompt-pilot-service/config"
	"github.com/promptpilot/prompt-pilot-service/session"
)

// DeleteMode runs the cached-session deletion CLI tool.
func DeleteMode(cfg *config.Config, patterns []string) error {
	ctx := context.Background()

	store, closeFn, err := openSessionStore(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	log.Printf("Deletion patterns: %v", patterns)

	allIDs, err := store.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch session IDs: %w", err)
	}

	log.Printf("Found %d total cached sessions", len(allIDs))
	if len(allIDs) == 0 {
		log.Println("No sessions found in cache")
		return nil
	}

	matchingIDs := []string{}
	for _, id := range allIDs {
		if matchesAnyPattern(id, patterns) {
			matchingIDs = append(matchingIDs, id)
		}
	}

	if len(matchingIDs) == 0 {
		log.Printf("No sessions matched the patterns: %v", patterns)
		return nil
	}

	// Confirm deletion
	fmt.Printf("\nWARNING: About to delete %d session(s):\n", len(matchingIDs))
	if len(matchingIDs) <= 10 {
		for _, id := range matchingIDs {
			fmt.Printf("  - %s\n", id)
		}
	} else {
		for i := 0; i < 5; i++ {
			fmt.Printf("  - %s\n", matchingIDs[i])
		}
		fmt.Printf("  ... and %d more\n", len(matchingIDs)-5)
	}
	fmt.Printf("\nThis action CANNOT be undone.\n")
	fmt.Printf("Type 'yes' to confirm deletion: ")

	var confirmation string
	_, _ = fmt.Scanln(&confirmation) // Ignore input errors

	if confirmation != "yes" {
		log.Println("Deletion cancelled by user")
		return nil
	}

	deletedCount := 0
	for _, id := range matchingIDs {
		if err := store.Delete(ctx, id); err != nil {
			log.Printf("Error deleting session %s: %v", id, err)
			continue
		}
		deletedCount++
	}

	log.Printf("Successfully deleted %d out of %d sessions", deletedCount, len(matchingIDs))
	return nil
}

// ListSessions shows all cached sessions with their goal descriptions.
func ListSessions(cfg *config.Config) error {
	ctx := context.Background()

	store, closeFn, err := openSessionStore(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	allIDs, err := store.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch session IDs: %w", err)
	}

	if len(allIDs) == 0 {
		fmt.Println("No sessions found in cache")
		return nil
	}

	fmt.Printf("Total sessions: %d\n\n", len(allIDs))
	fmt.Println("Session IDs:")
	for i, id := range allIDs {
		goal := ""
		if sess, err := store.Load(ctx, id); err == nil && sess != nil {
			goal = sess.Input.GoalDescription
			if len(goal) > 60 {
				goal = goal[:57] + "..."
			}
		}
		fmt.Printf("%4d. %s  [%s]\n", i+1, id, goal)
	}

	return nil
}

// openSessionStore connects to Redis for the maintenance modes. These modes
// only make sense against the persistent cache.
func openSessionStore(cfg *config.Config) (*session.RedisStore, func(), error) {
	if cfg.Redis.Addr == "" {
		return nil, nil, fmt.Errorf("no Redis address configured; session maintenance requires redis.addr in the config")
	}

	log.Println("Connecting to Redis...")
	client, err := newRedisClient(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Printf("Connected to Redis at %s", cfg.Redis.Addr)

	store := session.NewRedisStore(client, time.Duration(cfg.Redis.SessionTTLHours)*time.Hour)
	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}
	return store, closeFn, nil
}

// matchesAnyPattern checks if a session ID matches any of the given patterns.
func matchesAnyPattern(id string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchesPattern(id, pattern) {
			return true
		}
	}
	return false
}

// matchesPattern converts glob-style pattern to regex and matches.
// * becomes .* and ? becomes .
func matchesPattern(id, pattern string) bool {
	regexPattern := regexp.QuoteMeta(pattern)
	regexPattern = strings.ReplaceAll(regexPattern, `\*`, ".*")
	regexPattern = strings.ReplaceAll(regexPattern, `\?`, ".")
	regexPattern = "^" + regexPattern + "$"

	matched, err := regexp.MatchString(regexPattern, id)
	if err != nil {
		log.Printf("Invalid pattern '%s': %v", pattern, err)
		return false
	}
	return matched
}
