package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pudottapommin/pastebin-lite/pkg/pastes"
	"github.com/valkey-io/valkey-go"
)

const (
	fieldVersion = "v"
	fieldData    = "d"
)

// Each record lives in one hash: a version counter and the encoded blob.
// Put and CompareAndUpdate run as Lua scripts so the existence/version check
// and the write are a single atomic step on the server.
var (
	valkeyPutScript = valkey.NewLuaScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then return 0 end
redis.call('HSET', KEYS[1], 'v', ARGV[1], 'd', ARGV[2])
if ARGV[3] ~= '0' then redis.call('PEXPIRE', KEYS[1], ARGV[3]) end
return 1`)

	valkeyCasScript = valkey.NewLuaScript(`
local v = redis.call('HGET', KEYS[1], 'v')
if v == false then return -1 end
if v ~= ARGV[1] then return 0 end
redis.call('HSET', KEYS[1], 'v', ARGV[2], 'd', ARGV[3])
return 1`)
)

type ValkeyStore struct {
	client    valkey.Client
	encoder   Encoder[pastes.Paste]
	codec     *zstdCodec
	encryptor Encryptor
}

// NewValkey builds a Valkey-backed store. Blobs go through gob -> zstd and,
// when encryptor is non-nil, AES-GCM. Records with a TTL also get a real
// PEXPIRE as storage-side garbage collection; availability verdicts still
// come from the lifecycle engine.
func NewValkey(client valkey.Client, encryptor Encryptor) (*ValkeyStore, error) {
	codec, err := newZstdCodec()
	if err != nil {
		return nil, err
	}
	return &ValkeyStore{
		client:    client,
		encoder:   GobEncoder[pastes.Paste]{},
		codec:     codec,
		encryptor: encryptor,
	}, nil
}

func (s *ValkeyStore) Put(ctx context.Context, p pastes.Paste) error {
	blob, err := s.seal(p)
	if err != nil {
		return err
	}
	ttlMillis := uint64(0)
	if p.TTLSeconds != nil {
		ttlMillis = *p.TTLSeconds * 1000
	}
	n, err := valkeyPutScript.Exec(ctx, s.client,
		[]string{recordKey(p.ID)},
		[]string{"1", valkey.BinaryString(blob), strconv.FormatUint(ttlMillis, 10)},
	).AsInt64()
	if err != nil {
		return fmt.Errorf("valkey: error storing record: %w", err)
	}
	if n == 0 {
		return ErrDuplicateID
	}
	return nil
}

func (s *ValkeyStore) Get(ctx context.Context, id string) (pastes.Paste, uint64, error) {
	arr, err := s.client.Do(ctx,
		s.client.B().Hmget().Key(recordKey(id)).Field(fieldVersion, fieldData).Build(),
	).ToArray()
	if err != nil {
		return pastes.Paste{}, 0, fmt.Errorf("valkey: error getting record: %w", err)
	}
	version, err := arr[0].AsUint64()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return pastes.Paste{}, 0, ErrRecordNotFound
		}
		return pastes.Paste{}, 0, fmt.Errorf("valkey: error reading version: %w", err)
	}
	blob, err := arr[1].AsBytes()
	if err != nil {
		return pastes.Paste{}, 0, fmt.Errorf("valkey: error reading record: %w", err)
	}
	p, err := s.open(blob)
	if err != nil {
		return pastes.Paste{}, 0, err
	}
	return normalizeUTC(p), version, nil
}

func (s *ValkeyStore) CompareAndUpdate(ctx context.Context, id string, version uint64, p pastes.Paste) error {
	blob, err := s.seal(p)
	if err != nil {
		return err
	}
	n, err := valkeyCasScript.Exec(ctx, s.client,
		[]string{recordKey(id)},
		[]string{
			strconv.FormatUint(version, 10),
			strconv.FormatUint(version+1, 10),
			valkey.BinaryString(blob),
		},
	).AsInt64()
	if err != nil {
		return fmt.Errorf("valkey: error updating record: %w", err)
	}
	switch n {
	case -1:
		return ErrRecordNotFound
	case 0:
		return ErrVersionConflict
	}
	return nil
}

func (s *ValkeyStore) Ping(ctx context.Context) error {
	return s.client.Do(ctx, s.client.B().Ping().Build()).Error()
}

func (s *ValkeyStore) seal(p pastes.Paste) ([]byte, error) {
	buf, err := s.encoder.Encode(p)
	if err != nil {
		return nil, fmt.Errorf("valkey: error encoding record: %w", err)
	}
	buf = s.codec.Compress(buf)
	if s.encryptor != nil {
		if buf, err = s.encryptor.Encrypt(buf); err != nil {
			return nil, fmt.Errorf("valkey: error encrypting record: %w", err)
		}
	}
	return buf, nil
}

func (s *ValkeyStore) open(blob []byte) (pastes.Paste, error) {
	var err error
	if s.encryptor != nil {
		if blob, err = s.encryptor.Decrypt(blob); err != nil {
			return pastes.Paste{}, fmt.Errorf("valkey: error decrypting record: %w", err)
		}
	}
	if blob, err = s.codec.Decompress(blob); err != nil {
		return pastes.Paste{}, fmt.Errorf("valkey: error decompressing record: %w", err)
	}
	var p pastes.Paste
	if err = s.encoder.Decode(blob, &p); err != nil {
		return pastes.Paste{}, fmt.Errorf("valkey: error decoding record: %w", err)
	}
	return p, nil
}

func recordKey(id string) string {
	return "paste:" + id
}

var _ Store = (*ValkeyStore)(nil)
