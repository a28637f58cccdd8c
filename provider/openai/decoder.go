package openai

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/casualjim/scribe/pkg/slogx"
	json "github.com/goccy/go-json"
	"github.com/openai/openai-go"
	"github.com/tidwall/gjson"
)

const (
	dataPrefix   = "data: "
	doneSentinel = "[DONE]"
	readSize     = 4096
)

// NewDecoder creates a Decoder reading newline-delimited Server-Sent-Events from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r:       r,
		readBuf: make([]byte, readSize),
		logger:  slog.Default().With(slogx.LoggerName("openai.decoder")),
	}
}

// Decoder turns an OpenAI-compatible SSE body into text fragments.
//
// Only "data: " lines are considered. The payload "[DONE]" ends the sequence.
// Payloads that are not valid chat completion chunks, or that carry no content,
// are skipped without surfacing an error.
type Decoder struct {
	r       io.Reader
	readBuf []byte
	buf     []byte
	lines   []string

	current string
	err     error
	eof     bool
	done    bool
	skipped int

	logger *slog.Logger
}

// Next advances to the next non-empty fragment.
func (d *Decoder) Next() bool {
	if d.done {
		return false
	}
	for {
		for len(d.lines) > 0 {
			line := d.lines[0]
			d.lines = d.lines[1:]

			fragment, stop := d.decodeLine(line)
			if stop {
				d.done = true
				return false
			}
			if fragment != "" {
				d.current = fragment
				return true
			}
		}
		if d.eof {
			d.done = true
			return false
		}
		d.fill()
	}
}

// Current returns the fragment produced by the last successful call to Next.
func (d *Decoder) Current() string {
	return d.current
}

// Err returns the read error that ended the sequence. Reaching the sentinel or the
// end of the body is not an error.
func (d *Decoder) Err() error {
	return d.err
}

// Skipped returns how many data lines could not be decoded.
func (d *Decoder) Skipped() int {
	return d.skipped
}

func (d *Decoder) fill() {
	n, err := d.r.Read(d.readBuf)
	if n > 0 {
		d.buf = append(d.buf, d.readBuf[:n]...)
		d.splitLines()
	}
	if err == nil {
		return
	}

	d.eof = true
	if !errors.Is(err, io.EOF) {
		d.err = err
		return
	}
	// the body ended without a trailing newline
	if len(d.buf) > 0 {
		d.lines = append(d.lines, string(bytes.TrimSuffix(d.buf, []byte{'\r'})))
		d.buf = d.buf[:0]
	}
}

func (d *Decoder) splitLines() {
	rest := d.buf
	for {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			break
		}
		d.lines = append(d.lines, string(bytes.TrimSuffix(rest[:i], []byte{'\r'})))
		rest = rest[i+1:]
	}
	d.buf = append(d.buf[:0], rest...)
}

func (d *Decoder) decodeLine(line string) (fragment string, stop bool) {
	payload, ok := strings.CutPrefix(line, dataPrefix)
	if !ok {
		return "", false
	}
	if payload == doneSentinel {
		return "", true
	}

	if !gjson.Valid(payload) {
		d.skip(payload, "invalid json")
		return "", false
	}

	var chunk openai.ChatCompletionChunk
	if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
		d.skip(payload, err.Error())
		return "", false
	}
	if len(chunk.Choices) == 0 {
		return "", false
	}
	return chunk.Choices[0].Delta.Content, false
}

func (d *Decoder) skip(payload, reason string) {
	d.skipped++
	d.logger.Debug("skipping undecodable event",
		slog.String("reason", reason),
		slog.Int("length", len(payload)),
		slog.Int("skipped", d.skipped),
	)
}
