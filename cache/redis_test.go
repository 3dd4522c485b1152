package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

func TestRedisCache_Get_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	cache := NewRedisCacheFromClient(db, time.Hour, "test:")

	mock.ExpectGet("test:mykey").SetVal("myvalue")

	val, ok := cache.Get(context.Background(), "mykey")
	if !ok {
		t.Error("Expected cache hit")
	}
	if val != "myvalue" {
		t.Errorf("Expected 'myvalue', got %q", val)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisCache_Get_Miss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	cache := NewRedisCacheFromClient(db, time.Hour, "test:")

	mock.ExpectGet("test:mykey").RedisNil()

	val, ok := cache.Get(context.Background(), "mykey")
	if ok {
		t.Error("Expected cache miss")
	}
	if val != "" {
		t.Errorf("Expected empty string, got %q", val)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisCache_Get_ErrorIsMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	cache := NewRedisCacheFromClient(db, time.Hour, "test:")

	mock.ExpectGet("test:mykey").SetErr(errors.New("connection reset"))

	if _, ok := cache.Get(context.Background(), "mykey"); ok {
		t.Error("Backend error should be reported as a miss")
	}
}

func TestRedisCache_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	cache := NewRedisCacheFromClient(db, time.Hour, "test:")

	mock.ExpectSet("test:mykey", "myvalue", time.Hour).SetVal("OK")

	err := cache.Set(context.Background(), "mykey", "myvalue")
	if err != nil {
		t.Errorf("Set failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisCache_Set_NoTTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	cache := NewRedisCacheFromClient(db, 0, "test:")

	mock.ExpectSet("test:mykey", "myvalue", 0).SetVal("OK")

	err := cache.Set(context.Background(), "mykey", "myvalue")
	if err != nil {
		t.Errorf("Set failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisCache_Set_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	cache := NewRedisCacheFromClient(db, 0, "test:")

	mock.ExpectSet("test:mykey", "myvalue", 0).SetErr(errors.New("READONLY"))

	err := cache.Set(context.Background(), "mykey", "myvalue")
	var cacheErr *Error
	if !errors.As(err, &cacheErr) {
		t.Fatalf("Expected *Error, got %v", err)
	}
	if cacheErr.Op != "set" || cacheErr.Key != "mykey" {
		t.Errorf("Unexpected error fields: %+v", cacheErr)
	}
}

func TestRedisCache_DefaultKeyPrefix(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	cache := NewRedisCacheFromClient(db, time.Hour, "")

	mock.ExpectGet("alltools:sitemap:abc:https://alltools.com").SetVal("<urlset/>")

	val, ok := cache.Get(context.Background(), "sitemap:abc:https://alltools.com")
	if !ok || val != "<urlset/>" {
		t.Errorf("Expected '<urlset/>', got %q (ok=%v)", val, ok)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisCache_Entries(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	cache := NewRedisCacheFromClient(db, time.Hour, "test:")

	mock.ExpectScan(0, "test:*", scanBatch).SetVal([]string{"test:a", "test:b"}, 7)
	mock.ExpectGet("test:a").SetVal("1")
	mock.ExpectGet("test:b").RedisNil()
	mock.ExpectScan(7, "test:*", scanBatch).SetVal([]string{"test:c"}, 0)
	mock.ExpectGet("test:c").SetVal("3")

	entries, err := cache.Entries(context.Background())
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(entries) != 2 || entries["a"] != "1" || entries["c"] != "3" {
		t.Errorf("Unexpected entries: %v", entries)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisCache_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	cache := NewRedisCacheFromClient(db, time.Hour, "test:")

	mock.ExpectPing().SetVal("PONG")

	err := cache.Ping(context.Background())
	if err != nil {
		t.Errorf("Ping failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisCache_PingError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	cache := NewRedisCacheFromClient(db, time.Hour, "test:")

	mock.ExpectPing().SetErr(errors.New("dial tcp: refused"))

	var cacheErr *Error
	if err := cache.Ping(context.Background()); !errors.As(err, &cacheErr) {
		t.Errorf("Expected *Error, got %v", err)
	}
}

func TestNewRedisCache_BadURL(t *testing.T) {
	_, err := NewRedisCache(context.Background(), RedisConfig{URL: "not-a-url"})
	if err == nil {
		t.Fatal("Expected error for invalid URL")
	}
}

func TestRedisCache_Close(t *testing.T) {
	db, _ := redismock.NewClientMock()

	cache := NewRedisCacheFromClient(db, time.Hour, "test:")

	if err := cache.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}
