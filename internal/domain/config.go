package domain

// KeyPrefix is the default namespace for all keys written by healthdir.
const KeyPrefix = "healthdir:"

// MinQueryLength is the minimum number of characters a trimmed search query must have.
const MinQueryLength = 2
