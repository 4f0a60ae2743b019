package thriftrt

import (
	"sync/atomic"
)

// Client is embedded by every generated root client. It carries the
// connection and the request id counter shared by all methods, inherited
// ones included.
type Client struct {
	conn  Connection
	seqID atomic.Int32
}

func NewClient(conn Connection) *Client {
	return &Client{conn: conn}
}

// NextSeqID returns the sequence id for a new call. The first call gets 1.
func (c *Client) NextSeqID() int32 {
	return c.seqID.Add(1)
}

// LastSeqID returns the most recently issued sequence id, 0 if none.
func (c *Client) LastSeqID() int32 {
	return c.seqID.Load()
}

func (c *Client) Connection() Connection {
	return c.conn
}
