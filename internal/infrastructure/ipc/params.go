// Package ipc carries messages between this process and its network and
// storage peers: versioned parameter structs and an in-process bus.
package ipc

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/bnema/pagecore/internal/domain/entity"
)

// WireVersion is the version written into every parameter envelope.
const WireVersion = 1

var (
	// ErrDecode reports a message that could not be decoded as a whole.
	ErrDecode = errors.New("ipc decode failed")
	// ErrTimeout reports a synchronous send without reply in time.
	ErrTimeout = errors.New("ipc reply timed out")
	// ErrClosed reports use of a closed bus.
	ErrClosed = errors.New("ipc bus closed")
)

// MemoryPressureThresholds are the resident sizes at which the process
// sheds caches.
type MemoryPressureThresholds struct {
	WarningBytes  uint64
	CriticalBytes uint64
}

// ProcessCreationParameters configure a freshly started web content process.
type ProcessCreationParameters struct {
	CacheModel                   entity.CacheModel
	DiskCacheDirectory           string
	DiskCacheSizeBytes           uint64
	URLSchemesRegisteredAsLocal  []string
	URLSchemesRegisteredAsSecure []string
	MemoryPressure               MemoryPressureThresholds
	AdBlockEnabled               bool
}

// CookiePolicy selects which cookies the network session accepts.
type CookiePolicy int

const (
	CookiePolicyAlways CookiePolicy = iota
	CookiePolicyNever
	CookiePolicyNoThirdParty
)

// NetworkSessionCreationParameters configure a session of the network
// process.
type NetworkSessionCreationParameters struct {
	SessionID      uuid.UUID
	CacheDirectory string
	CookiePolicy   CookiePolicy
	ITPEnabled     bool
	ProxyURL       string
}

// Every wire field is a pointer so that an absent field is told apart from
// a zero value.
type processCreationWire struct {
	CacheModel                   *entity.CacheModel `json:"cache_model"`
	DiskCacheDirectory           *string            `json:"disk_cache_directory"`
	DiskCacheSizeBytes           *uint64            `json:"disk_cache_size_bytes"`
	URLSchemesRegisteredAsLocal  *[]string          `json:"url_schemes_registered_as_local"`
	URLSchemesRegisteredAsSecure *[]string          `json:"url_schemes_registered_as_secure"`
	MemoryPressureWarningBytes   *uint64            `json:"memory_pressure_warning_bytes"`
	MemoryPressureCriticalBytes  *uint64            `json:"memory_pressure_critical_bytes"`
	AdBlockEnabled               *bool              `json:"ad_block_enabled"`
}

type networkSessionWire struct {
	SessionID      *string       `json:"session_id"`
	CacheDirectory *string       `json:"cache_directory"`
	CookiePolicy   *CookiePolicy `json:"cookie_policy"`
	ITPEnabled     *bool         `json:"itp_enabled"`
	ProxyURL       *string       `json:"proxy_url"`
}

type envelope[T any] struct {
	Version *int `json:"version"`
	Params  *T   `json:"params"`
}

// EncodeProcessCreationParameters serializes p in a versioned envelope.
func EncodeProcessCreationParameters(p ProcessCreationParameters) ([]byte, error) {
	local := nonNil(p.URLSchemesRegisteredAsLocal)
	secure := nonNil(p.URLSchemesRegisteredAsSecure)
	w := processCreationWire{
		CacheModel:                   &p.CacheModel,
		DiskCacheDirectory:           &p.DiskCacheDirectory,
		DiskCacheSizeBytes:           &p.DiskCacheSizeBytes,
		URLSchemesRegisteredAsLocal:  &local,
		URLSchemesRegisteredAsSecure: &secure,
		MemoryPressureWarningBytes:   &p.MemoryPressure.WarningBytes,
		MemoryPressureCriticalBytes:  &p.MemoryPressure.CriticalBytes,
		AdBlockEnabled:               &p.AdBlockEnabled,
	}
	return encode(w)
}

// DecodeProcessCreationParameters is the inverse of
// EncodeProcessCreationParameters. Any missing field fails the whole decode.
func DecodeProcessCreationParameters(data []byte) (ProcessCreationParameters, error) {
	w, err := decode[processCreationWire](data)
	if err != nil {
		return ProcessCreationParameters{}, err
	}
	if !w.CacheModel.IsValid() {
		return ProcessCreationParameters{}, fmt.Errorf("%w: cache_model %d out of range", ErrDecode, *w.CacheModel)
	}
	return ProcessCreationParameters{
		CacheModel:                   *w.CacheModel,
		DiskCacheDirectory:           *w.DiskCacheDirectory,
		DiskCacheSizeBytes:           *w.DiskCacheSizeBytes,
		URLSchemesRegisteredAsLocal:  *w.URLSchemesRegisteredAsLocal,
		URLSchemesRegisteredAsSecure: *w.URLSchemesRegisteredAsSecure,
		MemoryPressure: MemoryPressureThresholds{
			WarningBytes:  *w.MemoryPressureWarningBytes,
			CriticalBytes: *w.MemoryPressureCriticalBytes,
		},
		AdBlockEnabled: *w.AdBlockEnabled,
	}, nil
}

// EncodeNetworkSessionCreationParameters serializes p in a versioned envelope.
func EncodeNetworkSessionCreationParameters(p NetworkSessionCreationParameters) ([]byte, error) {
	id := p.SessionID.String()
	return encode(networkSessionWire{
		SessionID:      &id,
		CacheDirectory: &p.CacheDirectory,
		CookiePolicy:   &p.CookiePolicy,
		ITPEnabled:     &p.ITPEnabled,
		ProxyURL:       &p.ProxyURL,
	})
}

// DecodeNetworkSessionCreationParameters is the inverse of
// EncodeNetworkSessionCreationParameters.
func DecodeNetworkSessionCreationParameters(data []byte) (NetworkSessionCreationParameters, error) {
	w, err := decode[networkSessionWire](data)
	if err != nil {
		return NetworkSessionCreationParameters{}, err
	}
	id, err := uuid.Parse(*w.SessionID)
	if err != nil {
		return NetworkSessionCreationParameters{}, fmt.Errorf("%w: session_id: %v", ErrDecode, err)
	}
	return NetworkSessionCreationParameters{
		SessionID:      id,
		CacheDirectory: *w.CacheDirectory,
		CookiePolicy:   *w.CookiePolicy,
		ITPEnabled:     *w.ITPEnabled,
		ProxyURL:       *w.ProxyURL,
	}, nil
}

func encode[T any](w T) ([]byte, error) {
	v := WireVersion
	data, err := sonic.Marshal(envelope[T]{Version: &v, Params: &w})
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", w, err)
	}
	return data, nil
}

func decode[T any](data []byte) (*T, error) {
	var env envelope[T]
	if err := sonic.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if env.Version == nil {
		return nil, fmt.Errorf("%w: missing version", ErrDecode)
	}
	if *env.Version != WireVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrDecode, *env.Version)
	}
	if env.Params == nil {
		return nil, fmt.Errorf("%w: missing params", ErrDecode)
	}
	if err := requireAll(env.Params); err != nil {
		return nil, err
	}
	return env.Params, nil
}

// requireAll fails on the first nil pointer field of the wire struct w.
func requireAll(w any) error {
	v := reflect.ValueOf(w).Elem()
	t := v.Type()
	for i := range v.NumField() {
		if v.Field(i).IsNil() {
			name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
			return fmt.Errorf("%w: missing field %q", ErrDecode, name)
		}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
