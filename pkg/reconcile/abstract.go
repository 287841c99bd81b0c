package reconcile

import (
	"strconv"
	"strings"

	md "github.com/nao1215/markdown"
)

// Abstract renders the classification counts as a markdown table:
//
//	| Abstract | old | new | deleted | updated | inserted | common |
//	|----------|-----|-----|---------|---------|----------|--------|
//	| count    | ... | ... | ...     | ...     | ...      | ...    |
func (r *Result) Abstract() string {
	s := r.summary

	buf := &strings.Builder{}
	md.NewMarkdown(buf).
		Table(md.TableSet{
			Header: []string{"Abstract", "old", "new", "deleted", "updated", "inserted", "common"},
			Rows: [][]string{{
				"count",
				strconv.Itoa(s.Old),
				strconv.Itoa(s.New),
				strconv.Itoa(s.Deleted),
				strconv.Itoa(s.Updated),
				strconv.Itoa(s.Inserted),
				strconv.Itoa(s.Unchanged),
			}},
		}).
		Build()

	return buf.String()
}
