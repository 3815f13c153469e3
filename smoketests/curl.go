package smoketests

import (
	"net/http"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// curlCommand returns a shell command line that repeats the request by hand.
func curlCommand(req *http.Request) string {
	var b commandBuilder
	b.add("curl", "-sS", "-i")
	names := make([]string, 0, len(req.Header))
	for name := range req.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range req.Header[name] {
			b.add("-H", name+": "+value)
		}
	}
	b.add(req.URL.String())
	return b.String()
}
