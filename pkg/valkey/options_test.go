package valkey

import (
	"testing"
	"time"
)

func TestRedisOptions(t *testing.T) {
	tests := []struct {
		name         string
		opts         Options
		wantAddr     string
		wantDial     time.Duration
		wantRead     time.Duration
		wantPool     int
		wantMinIdle  int
		wantPassword string
	}{
		{
			name:        "zero value",
			opts:        Options{},
			wantAddr:    "localhost:6379",
			wantDial:    3 * time.Second,
			wantRead:    2 * time.Second,
			wantPool:    10,
			wantMinIdle: 0,
		},
		{
			name:         "directory call timeout",
			opts:         DirectoryOptions("valkey:6379", "pw", 750*time.Millisecond),
			wantAddr:     "valkey:6379",
			wantDial:     3 * time.Second,
			wantRead:     750 * time.Millisecond,
			wantPool:     10,
			wantPassword: "pw",
		},
		{
			name:        "explicit pool",
			opts:        Options{Addr: "10.0.0.9:6380", DialTimeout: time.Second, PoolSize: 20, MinIdleConns: 5},
			wantAddr:    "10.0.0.9:6380",
			wantDial:    time.Second,
			wantRead:    2 * time.Second,
			wantPool:    20,
			wantMinIdle: 5,
		},
		{
			name:        "min idle over pool size",
			opts:        Options{PoolSize: 4, MinIdleConns: 8},
			wantAddr:    "localhost:6379",
			wantDial:    3 * time.Second,
			wantRead:    2 * time.Second,
			wantPool:    4,
			wantMinIdle: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ro := tt.opts.redisOptions()
			if ro.Addr != tt.wantAddr {
				t.Errorf("Addr = %q, want %q", ro.Addr, tt.wantAddr)
			}
			if ro.Password != tt.wantPassword {
				t.Errorf("Password = %q, want %q", ro.Password, tt.wantPassword)
			}
			if ro.DialTimeout != tt.wantDial {
				t.Errorf("DialTimeout = %v, want %v", ro.DialTimeout, tt.wantDial)
			}
			if ro.ReadTimeout != tt.wantRead || ro.WriteTimeout != tt.wantRead {
				t.Errorf("Read/WriteTimeout = %v/%v, want %v", ro.ReadTimeout, ro.WriteTimeout, tt.wantRead)
			}
			if ro.PoolSize != tt.wantPool {
				t.Errorf("PoolSize = %d, want %d", ro.PoolSize, tt.wantPool)
			}
			if ro.MinIdleConns != tt.wantMinIdle {
				t.Errorf("MinIdleConns = %d, want %d", ro.MinIdleConns, tt.wantMinIdle)
			}
		})
	}
}
