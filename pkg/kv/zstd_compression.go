package kv

import (
	"fms/cdu/pkg/datastructure"

	"github.com/DataDog/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

func Encode(wps []datastructure.Waypoint) ([]byte, error) {
	return msgpack.Marshal(wps)
}

func Decode(bb []byte) ([]datastructure.Waypoint, error) {
	var wps []datastructure.Waypoint
	if err := msgpack.Unmarshal(bb, &wps); err != nil {
		return nil, err
	}
	return wps, nil
}

func Compress(bb []byte) ([]byte, error) {
	var bbCompressed []byte
	bbCompressed, err := zstd.Compress(bbCompressed, bb)
	if err != nil {
		return []byte{}, err
	}
	return bbCompressed, nil
}

func Decompress(bbCompressed []byte) ([]byte, error) {
	var bb []byte
	bb, err := zstd.Decompress(bb, bbCompressed)
	if err != nil {
		return []byte{}, err
	}

	return bb, nil
}

// CompressWaypoints msgpack then zstd, the value format of every kv entry.
func CompressWaypoints(wps []datastructure.Waypoint) ([]byte, error) {
	bb, err := Encode(wps)
	if err != nil {
		return nil, err
	}
	return Compress(bb)
}

func LoadWaypoints(bbCompressed []byte) ([]datastructure.Waypoint, error) {
	bb, err := Decompress(bbCompressed)
	if err != nil {
		return nil, err
	}
	return Decode(bb)
}
