package rule

const (
	CR   byte = '\r'
	LF   byte = '\n'
	SP   byte = ' '
	HTAB byte = '\t'
	VT   byte = 0x0B
	FF   byte = 0x0C
)

var (
	OWS  = []byte{SP, HTAB}
	CRLF = []byte{CR, LF}

	// Blank-line separators between header block and body.
	// A bare LFLF is tolerated for peers that don't send CR.
	CRLFCRLF = []byte{CR, LF, CR, LF}
	LFLF     = []byte{LF, LF}

	Whitespaces = []byte{SP, HTAB, VT, FF, CR, LF}
)

func IsWhitespace(c byte) bool {
	for _, ws := range Whitespaces {
		if c == ws {
			return true
		}
	}
	return false
}
