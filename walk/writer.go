package walk

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteCorpus drains it into dst as one walk per line, IDs separated by a
// single space. It returns the number of walks written.
func WriteCorpus(dst io.Writer, it *Iterator) (int, error) {
	bw := bufio.NewWriter(dst)
	buf := make([]byte, 0, 256)
	n := 0
	for it.Next() {
		buf = appendWalk(buf[:0], it.Walk())
		if _, err := bw.Write(buf); err != nil {
			return n, fmt.Errorf("WriteCorpus: walk %d: %w", n, err)
		}
		n++
	}
	if err := it.Err(); err != nil {
		return n, err
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("WriteCorpus: flush: %w", err)
	}

	return n, nil
}

// WriteWalks writes an already materialised corpus in the WriteCorpus format.
func WriteWalks(dst io.Writer, walks []Walk) error {
	bw := bufio.NewWriter(dst)
	buf := make([]byte, 0, 256)
	for i, wk := range walks {
		buf = appendWalk(buf[:0], wk)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("WriteWalks: walk %d: %w", i, err)
		}
	}

	return bw.Flush()
}

func appendWalk(buf []byte, wk Walk) []byte {
	for i, v := range wk {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, v, 10)
	}

	return append(buf, '\n')
}
