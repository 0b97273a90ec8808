// Package redis stores reports in Redis with optional expiry.
package redis
