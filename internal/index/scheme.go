package index

var (
	bEntries = []byte("entries")  // slug -> entryBytes
	bIdxDate = []byte("idx_date") // dateKey -> slug
)
