// encoding/doc.go
package encoding

/*
Package encoding provides a small reusable byte-buffer pool for the row
assembly paths in the edm package.

Decoding a flight walks potentially tens of thousands of records, each one
building a formatted CSV line; without reuse that's one allocation per
record. BufferPool hands out size-tiered buffers backed by sync.Pool so the
steady-state decode loop can reuse the same handful of backing arrays.
*/
