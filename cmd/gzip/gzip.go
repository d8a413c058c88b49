// Модуль gzip для компрессии и декомпрессии данных.
// Позволяет отправлять данные, получать и считывать их в сжатом виде
// с использованием алгоритма сжатия gzip.
package gzip

import (
	"compress/gzip"
	"io"
	"net/http"
)

// CompressWriter оборачивает http.ResponseWriter и сжимает тело успешных ответов.
// Ответы с кодом 300 и выше отправляются без сжатия.
type CompressWriter struct {
	w           http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
	compress    bool
}

// NewCompressWriter создает новый CompressWriter, оборачивая http.ResponseWriter.
func NewCompressWriter(w http.ResponseWriter) *CompressWriter {
	return &CompressWriter{w: w}
}

// Header возвращает заголовки ответа.
func (c *CompressWriter) Header() http.Header {
	return c.w.Header()
}

// Write записывает данные, сжимая их, если ответ успешный.
func (c *CompressWriter) Write(p []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	if c.compress {
		return c.zw.Write(p)
	}
	return c.w.Write(p)
}

// WriteHeader отправляет код ответа. Для кодов меньше 300 добавляет
// заголовок Content-Encoding и включает сжатие.
func (c *CompressWriter) WriteHeader(statusCode int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true

	if statusCode < 300 {
		c.compress = true
		c.zw = gzip.NewWriter(c.w)
		c.w.Header().Set("Content-Encoding", "gzip")
		c.w.Header().Del("Content-Length")
	}
	c.w.WriteHeader(statusCode)
}

// Close сбрасывает остаток сжатых данных в ResponseWriter.
func (c *CompressWriter) Close() error {
	if c.zw == nil {
		return nil
	}
	return c.zw.Close()
}

// CompressReader оборачивает io.ReadCloser и распаковывает данные в формате gzip.
type CompressReader struct {
	r  io.ReadCloser
	zr *gzip.Reader
}

// NewCompressReader создает новый CompressReader. Возвращает ошибку,
// если заголовок gzip в потоке некорректен.
func NewCompressReader(r io.ReadCloser) (*CompressReader, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return &CompressReader{
		r:  r,
		zr: zr,
	}, nil
}

// Read читает и распаковывает данные.
func (c *CompressReader) Read(p []byte) (n int, err error) {
	return c.zr.Read(p)
}

// Close закрывает как исходный Reader, так и gzip.Reader.
func (c *CompressReader) Close() error {
	if err := c.r.Close(); err != nil {
		return err
	}
	return c.zr.Close()
}
