package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const seqPrefix = "seq"

// EncodeSeqToken creates a base64 encoded cursor pointing after the given ledger sequence.
func EncodeSeqToken(seq int64) string {
	tokenStr := fmt.Sprintf("%s|%d", seqPrefix, seq)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeSeqToken parses a cursor created by EncodeSeqToken.
func DecodeSeqToken(token string) (int64, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[0] != seqPrefix {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	seq, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || seq < 0 {
		return 0, fmt.Errorf("invalid pagination token format (sequence parse)")
	}
	return seq, nil
}
