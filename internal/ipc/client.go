package ipc

import (
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

// Client talks to a running slugline daemon over its control socket.
type Client struct {
	rpc *rpc.Client
}

// Dial connects to the daemon socket at the given path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return nil, fmt.Errorf("connect to daemon socket: %w", err)
	}
	return &Client{rpc: rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.rpc.Close()
}

// Start asks the daemon to begin processing jobs.
func (c *Client) Start() (StartResponse, error) {
	var resp StartResponse
	err := c.rpc.Call("Slugline.Start", StartRequest{}, &resp)
	return resp, err
}

// Stop asks the daemon to halt processing.
func (c *Client) Stop() (StopResponse, error) {
	var resp StopResponse
	err := c.rpc.Call("Slugline.Stop", StopRequest{}, &resp)
	return resp, err
}

// Status reports daemon and workflow state.
func (c *Client) Status() (StatusResponse, error) {
	var resp StatusResponse
	err := c.rpc.Call("Slugline.Status", StatusRequest{}, &resp)
	return resp, err
}

// Submit enqueues a screenplay for breakdown.
func (c *Client) Submit(req SubmitRequest) (SubmitResponse, error) {
	var resp SubmitResponse
	err := c.rpc.Call("Slugline.Submit", req, &resp)
	return resp, err
}

// JobGet fetches one job with its scene breakdowns.
func (c *Client) JobGet(id string) (JobGetResponse, error) {
	var resp JobGetResponse
	err := c.rpc.Call("Slugline.JobGet", JobGetRequest{ID: id}, &resp)
	return resp, err
}

// JobList returns every tracked job, newest first.
func (c *Client) JobList() (JobListResponse, error) {
	var resp JobListResponse
	err := c.rpc.Call("Slugline.JobList", JobListRequest{}, &resp)
	return resp, err
}

// JobCancel cancels a pending job.
func (c *Client) JobCancel(id string) (JobCancelResponse, error) {
	var resp JobCancelResponse
	err := c.rpc.Call("Slugline.JobCancel", JobCancelRequest{ID: id}, &resp)
	return resp, err
}

// Stats returns queue, cache, and store counters.
func (c *Client) Stats() (StatsResponse, error) {
	var resp StatsResponse
	err := c.rpc.Call("Slugline.Stats", StatsRequest{}, &resp)
	return resp, err
}

// SceneQuery lists indexed scenes featuring the named character.
func (c *Client) SceneQuery(character string) (SceneQueryResponse, error) {
	var resp SceneQueryResponse
	err := c.rpc.Call("Slugline.SceneQuery", SceneQueryRequest{Character: character}, &resp)
	return resp, err
}
