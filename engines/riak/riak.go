// Package riak_engine benchmarks Riak KV. Orders live as JSON documents in a
// single bucket, keyed by their order id, so the point lookup maps directly
// to a KV fetch. Riak has no full-scan primitive; the set fetch lists the
// bucket keys and fetches every document eagerly, which is exactly the cost a
// real application would pay.
package riak_engine

import (
	"encoding/json"
	"sort"
	"strconv"

	riak "github.com/basho/riak-go-client"

	"github.com/gishub/RawDataAccessBencher/bencher"
	"github.com/gishub/RawDataAccessBencher/mapping/adventureworks"
)

type Engine struct {
	client *riak.Client
	bucket string
	name   string
}

func New(client *riak.Client, bucket string) *Engine {
	return &Engine{
		client: client,
		bucket: bucket,
		name:   bencher.FrameworkName("riak-go-client v%s (%s)", "github.com/basho/riak-go-client"),
	}
}

func (e *Engine) fetch(key string) (*adventureworks.SalesOrderHeader, error) {
	cmd, err := riak.NewFetchValueCommandBuilder().
		WithBucket(e.bucket).
		WithKey(key).
		Build()
	if err != nil {
		return nil, err
	}
	if err := e.client.Execute(cmd); err != nil {
		return nil, err
	}

	rsp := cmd.(*riak.FetchValueCommand).Response
	if rsp.IsNotFound || len(rsp.Values) == 0 {
		return nil, nil
	}

	var h adventureworks.SalesOrderHeader
	if err := json.Unmarshal(rsp.Values[0].Value, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (e *Engine) FetchIndividual(key int) (*adventureworks.SalesOrderHeader, error) {
	return e.fetch(strconv.Itoa(key))
}

func (e *Engine) FetchSet() (bencher.Set[adventureworks.SalesOrderHeader], error) {
	cmd, err := riak.NewListKeysCommandBuilder().
		WithBucket(e.bucket).
		Build()
	if err != nil {
		return nil, err
	}
	if err := e.client.Execute(cmd); err != nil {
		return nil, err
	}

	keys := cmd.(*riak.ListKeysCommand).Response.Keys
	// listed keys come back unordered
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		return a < b
	})

	elems := make([]*adventureworks.SalesOrderHeader, 0, len(keys))
	for _, key := range keys {
		h, err := e.fetch(key)
		if err != nil {
			return nil, err
		}
		elems = append(elems, h)
	}
	return bencher.NewSliceSet(elems), nil
}

// Store writes one order document; used by the populate step.
func (e *Engine) Store(h *adventureworks.SalesOrderHeader) error {
	data, err := json.Marshal(h)
	if err != nil {
		return err
	}
	obj := &riak.Object{
		ContentType: "application/json",
		Charset:     "utf-8",
		Value:       data,
	}
	cmd, err := riak.NewStoreValueCommandBuilder().
		WithBucket(e.bucket).
		WithKey(strconv.Itoa(h.SalesOrderID)).
		WithContent(obj).
		Build()
	if err != nil {
		return err
	}
	return e.client.Execute(cmd)
}

func (e *Engine) Name() string             { return e.name }
func (e *Engine) UsesCaching() bool        { return false }
func (e *Engine) UsesChangeTracking() bool { return false }
