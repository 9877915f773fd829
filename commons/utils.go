// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

var envLoaded = false

func LoadEnvFile() {
	if envLoaded {
		return
	}
	envLoaded = true

	envFile := FlagValue(os.Args[1:], "--env-file")
	if envFile == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "Loading environment variables from file: %s\n", envFile)
	if err := loadEnvFrom(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load env file: %s\n", err)
	}
}

func loadEnvFrom(envFile string) error {
	file, err := os.Open(envFile)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
		os.Setenv(key, val)
	}
	return scanner.Err()
}

// GetEnv returns the value of key, or the first fallback when it is unset or empty.
func GetEnv(key string, fallback ...string) string {
	LoadEnvFile()
	if val := os.Getenv(key); val != "" {
		return val
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

// FlagValue returns the argument following name in args, accepting both
// "--name value" and "--name=value". The single-dash spelling used by the
// flag package is accepted too.
func FlagValue(args []string, name string) string {
	names := []string{name}
	if short, ok := strings.CutPrefix(name, "--"); ok {
		names = append(names, "-"+short)
	}
	for i, arg := range args {
		for _, n := range names {
			if arg == n && i+1 < len(args) {
				return args[i+1]
			}
			if v, ok := strings.CutPrefix(arg, n+"="); ok {
				return v
			}
		}
	}
	return ""
}
