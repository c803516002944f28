package utils

import "io"

// ReadCounter 统计已读取的字节数
type ReadCounter struct {
	Count  int64
	Reader io.Reader
}

func (r *ReadCounter) Read(p []byte) (n int, err error) {
	n, err = r.Reader.Read(p)
	r.Count += int64(n)
	return
}
