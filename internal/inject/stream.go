package inject

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Stream failures are classified so callers can report read-side and
// write-side errors distinctly.
var (
	ErrStreamRead  = errors.New("stream read failed")
	ErrStreamWrite = errors.New("stream write failed")
)

// The streaming variant trades memory for latency: input flows line by line
// through chained transformation stages to the output. It supports the
// js/css/remove subset and produces output identical to the whole-buffer
// engine for documents whose markers sit on their own lines. A mid-stream
// failure may leave a partially-written output.

// segmentStage consumes text segments. Segments are cut only at line ends
// and marker edges, so markers never straddle a segment boundary.
type segmentStage interface {
	write(seg string) error
}

type sinkStage struct {
	w *bufio.Writer
}

func (s *sinkStage) write(seg string) error {
	_, err := s.w.WriteString(seg)
	return err
}

// injectStage replaces region content between its opening marker and the
// endinject marker, forwarding the markers themselves verbatim.
type injectStage struct {
	next        segmentStage
	open        string
	replacement string
	skipping    bool
}

func (s *injectStage) write(seg string) error {
	for {
		if s.skipping {
			idx := strings.Index(seg, MarkerEndInject)
			if idx < 0 {
				return nil // inside the region, content replaced wholesale
			}
			s.skipping = false
			seg = seg[idx:]
			continue
		}

		idx := strings.Index(seg, s.open)
		if idx < 0 {
			return s.next.write(seg)
		}
		if err := s.next.write(seg[:idx+len(s.open)]); err != nil {
			return err
		}
		if err := s.next.write(s.replacement); err != nil {
			return err
		}
		s.skipping = true
		seg = seg[idx+len(s.open):]
	}
}

// removeStage deletes whole blocks, markers included, for its condition key.
type removeStage struct {
	next     segmentStage
	open     string
	skipping bool
}

func (s *removeStage) write(seg string) error {
	for {
		if s.skipping {
			idx := strings.Index(seg, MarkerEndRemove)
			if idx < 0 {
				return nil
			}
			s.skipping = false
			seg = seg[idx+len(MarkerEndRemove):]
			continue
		}

		idx := strings.Index(seg, s.open)
		if idx < 0 {
			return s.next.write(seg)
		}
		if err := s.next.write(seg[:idx]); err != nil {
			return err
		}
		s.skipping = true
		seg = seg[idx+len(s.open):]
	}
}

// Stream copies r to w through the chained stages. Stage order matches the
// whole-buffer engine: js, then css, then removal.
func Stream(r io.Reader, w io.Writer, src Sources) error {
	bw := bufio.NewWriter(w)

	var head segmentStage = &sinkStage{w: bw}
	head = &removeStage{next: head, open: RemoveMarker(src.RemoveKey)}
	if src.CSS != nil {
		head = &injectStage{next: head, open: MarkerInjectCSS, replacement: *src.CSS}
	}
	if src.JS != nil {
		head = &injectStage{next: head, open: MarkerInjectJS, replacement: *src.JS}
	}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			// Stage errors can only originate at the sink.
			if werr := head.write(line); werr != nil {
				return fmt.Errorf("%w: %w", ErrStreamWrite, werr)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrStreamRead, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrStreamWrite, err)
	}
	return nil
}
