package news

import (
	"crypto/sha256"
	"encoding/hex"
)

const articleIDLength = 16

// ArticleID derives a stable id from the source and headline, so the same
// story keeps its id across scrapes.
func ArticleID(source, title string) string {
	sum := sha256.Sum256([]byte(source + "\x00" + title))
	return hex.EncodeToString(sum[:])[:articleIDLength]
}
