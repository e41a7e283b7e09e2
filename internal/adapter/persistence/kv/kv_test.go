package kv

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"liquidation_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore checks the contract every backend shares.
func exerciseStore(t *testing.T, s interfaces.IKeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, found, err := s.Get(ctx, "customers")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "customers", []byte(`{"lastId":1,"items":[]}`)))
	v, found, err := s.Get(ctx, "customers")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"lastId":1,"items":[]}`, string(v))

	require.NoError(t, s.Set(ctx, "customers", []byte(`{"lastId":2,"items":[]}`)))
	v, _, err = s.Get(ctx, "customers")
	require.NoError(t, err)
	assert.Equal(t, `{"lastId":2,"items":[]}`, string(v))

	_, found, err = s.Get(ctx, "liquidations")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())

	t.Run("values are copied", func(t *testing.T) {
		s := NewMemoryStore()
		in := []byte("abc")
		require.NoError(t, s.Set(context.Background(), "k", in))
		in[0] = 'x'
		out, _, _ := s.Get(context.Background(), "k")
		assert.Equal(t, "abc", string(out))
	})
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backoffice.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	exerciseStore(t, s)
	require.NoError(t, s.Close())

	t.Run("survives reopen", func(t *testing.T) {
		reopened, err := OpenSQLite(path)
		require.NoError(t, err)
		defer reopened.Close()

		v, found, err := reopened.Get(context.Background(), "customers")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `{"lastId":2,"items":[]}`, string(v))
	})
}

type fakeRedis struct {
	values map[string]string
	err    error
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestRedisStore(t *testing.T) {
	client := &fakeRedis{values: map[string]string{}}
	exerciseStore(t, NewRedisStore(client, ""))
	assert.Contains(t, client.values, "backoffice:customers")

	t.Run("backend error", func(t *testing.T) {
		s := NewRedisStore(&fakeRedis{err: errors.New("connection refused")}, "x:")
		_, _, err := s.Get(context.Background(), "customers")
		assert.Error(t, err)
		assert.Error(t, s.Set(context.Background(), "customers", []byte("[]")))
	})
}

type fakeDynamo struct {
	items map[string]map[string]types.AttributeValue
	table string
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.table = *in.TableName
	k := in.Key["key"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[k]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.table = *in.TableName
	k := in.Item["key"].(*types.AttributeValueMemberS).Value
	f.items[k] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoDBStore(t *testing.T) {
	api := &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
	exerciseStore(t, NewDynamoDBStore(api, ""))
	assert.Equal(t, defaultKVTableName, api.table)

	_, ok := api.items["customers"]["value"].(*types.AttributeValueMemberB)
	assert.True(t, ok, "value should be stored as binary")
}
