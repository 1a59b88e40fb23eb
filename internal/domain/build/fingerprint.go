package build

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/inful/mdfp"
)

type Fingerprint struct {
	ContentHash  string
	TemplateHash string
	ConfigHash   string
	RenderHash   string
}

// ComputeContentHash fingerprints a post from its raw frontmatter block and body.
func (f *Fingerprint) ComputeContentHash(frontmatter, body string) {
	f.ContentHash = mdfp.CalculateFingerprintFromParts(frontmatter, body)
}

func (f *Fingerprint) ComputeRenderHash() {
	h := sha256.New()
	h.Write([]byte(f.ContentHash))
	h.Write([]byte(f.TemplateHash))
	h.Write([]byte(f.ConfigHash))
	f.RenderHash = hex.EncodeToString(h.Sum(nil))
}

func HashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
