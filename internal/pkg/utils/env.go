package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
)

func getEnv(key string, defaultValue interface{}) interface{} {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	switch defaultValue.(type) {
	case string:
		return value
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			log.Printf("Error parsing %s: %v, will use default value", key, err)
			return defaultValue
		}
		return intValue
	case int64:
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			log.Printf("Error parsing %s: %v, will use default value", key, err)
			return defaultValue
		}
		return intValue
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			log.Printf("Error parsing %s: %v, will use default value", key, err)
			return defaultValue
		}
		return boolValue
	default:
		return defaultValue
	}
}

func GetEnvString(key, defaultValue string) string {
	return getEnv(key, defaultValue).(string)
}

func GetEnvInt(key string, defaultValue int) int {
	return getEnv(key, defaultValue).(int)
}

func GetEnvInt64(key string, defaultValue int64) int64 {
	return getEnv(key, defaultValue).(int64)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return getEnv(key, defaultValue).(bool)
}

// GetEnvMap reads a "key=value,key=value" list. Malformed pairs are skipped.
func GetEnvMap(key string) map[string]string {
	result := make(map[string]string)
	value, exists := os.LookupEnv(key)
	if !exists {
		return result
	}

	for _, pair := range strings.Split(value, ",") {
		name, mapped, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || name == "" {
			log.Printf("Error parsing %s: malformed pair %q, will skip it", key, pair)
			continue
		}
		result[strings.TrimSpace(name)] = strings.TrimSpace(mapped)
	}
	return result
}
