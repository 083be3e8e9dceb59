package controllers

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/labstack/gommon/log"

	"github.com/radhian/loan-reconciliation-mcp/consts"
)

// maxLineBytes bounds a single request line. Queries are short; anything
// larger is a broken client.
const maxLineBytes = 1024 * 1024

// Session drives the strictly alternating request/response loop: read one
// line, write exactly one response line, flush, then read the next. Reading
// input is the only blocking point.
type Session struct {
	rpc *RPCController
	in  io.Reader
	out *bufio.Writer
}

func NewSession(rpc *RPCController, in io.Reader, out io.Writer) *Session {
	return &Session{rpc: rpc, in: in, out: bufio.NewWriter(out)}
}

// Run serves the session until the input stream ends or ctx is cancelled.
// Each response is flushed before the next line is read, so shutdown never
// drops an in-flight response.
func (s *Session) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			log.Infof("[Session] Shutdown requested, closing session")
			return nil
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		resp := s.rpc.HandleLine(ctx, line)
		if err := s.writeResponse(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request line: %w", err)
	}
	log.Infof("[Session] Input stream closed, session ended")
	return nil
}

func (s *Session) writeResponse(resp rpcResponse) error {
	encoded, err := json.Marshal(resp)
	if err != nil {
		// Responses are built from already-decoded values, so this should
		// not happen; keep the alternation intact with a bare error line.
		log.Errorf("[Session] Failed to encode response: %v", err)
		encoded = []byte(fmt.Sprintf(`{"id":null,"error":{"code":%d,"message":"failed to encode response"}}`,
			consts.CodeInternalError))
	}
	if _, err := s.out.Write(encoded); err != nil {
		return err
	}
	if err := s.out.WriteByte('\n'); err != nil {
		return err
	}
	return s.out.Flush()
}
