// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package availabilitydistribution

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	parachaintypes "github.com/ChainSafe/parachain-availability/dot/parachain/types"
	"github.com/ChainSafe/parachain-availability/dot/parachain/util"
	"github.com/ChainSafe/parachain-availability/internal/log"
	"github.com/ChainSafe/parachain-availability/lib/common"
	"github.com/ChainSafe/parachain-availability/lib/keystore"
	lru "github.com/hashicorp/golang-lru/v2"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "parachain-availability-distribution"))

var _ RuntimeAPI = (*util.RuntimeAPIClient)(nil)

// SessionCache caches session info as needed by availability distribution.
//
// A cached session should stay in the cache as long as it might be needed, since
// fetching it again loses the validator order built up by ReportBad.
//
// SessionCache is not safe for concurrent use. It is meant to be owned by a single
// goroutine, the subsystem's message loop, which serialises all calls to it.
type SessionCache struct {
	// sessionIndexCache maps a relay parent to the session index of its children.
	// It is queried up to a hundred times per block.
	sessionIndexCache *lru.Cache[common.Hash, parachaintypes.SessionIndex]

	// sessionInfoCache holds localized session info by session index. It must be checked
	// before fetching from the runtime, so the order of validators is not reset.
	sessionInfoCache *lru.Cache[parachaintypes.SessionIndex, *SessionInfo]

	// keystore determines whether we are a validator and what ValidatorIndex we have.
	keystore keystore.KeypairGetter
	runtime  RuntimeAPI
	rand     *rand.Rand
}

// SessionInfo is session information localized to this node,
// tailored for the needs of availability distribution.
type SessionInfo struct {
	// SessionIndex is the index of this session.
	SessionIndex parachaintypes.SessionIndex

	// ValidatorGroups are the validator groups of the session.
	//
	// The order of each group is randomized, every node arrives at a different order,
	// so chunk requests for a group are spread across its validators.
	// Validators are tried in reverse order.
	ValidatorGroups [][]parachaintypes.AuthorityDiscoveryID

	// OurIndex is our index in the validator set of the session.
	OurIndex parachaintypes.ValidatorIndex

	// OurGroup is the group we belong to. We won't fetch chunks for candidates of
	// our own group, we should have them via PoV distribution.
	OurGroup parachaintypes.GroupIndex
}

// Clone returns a deep copy of the session info.
func (s *SessionInfo) Clone() *SessionInfo {
	groups := make([][]parachaintypes.AuthorityDiscoveryID, len(s.ValidatorGroups))
	for i, group := range s.ValidatorGroups {
		groups[i] = append([]parachaintypes.AuthorityDiscoveryID(nil), group...)
	}

	return &SessionInfo{
		SessionIndex:    s.SessionIndex,
		ValidatorGroups: groups,
		OurIndex:        s.OurIndex,
		OurGroup:        s.OurGroup,
	}
}

// BadValidators is a report of validators of a group which did not respond properly.
type BadValidators struct {
	// SessionIndex is the session the group belongs to.
	SessionIndex parachaintypes.SessionIndex
	// GroupIndex is the group of the bad validators.
	GroupIndex parachaintypes.GroupIndex
	// BadValidators are the discovery keys of the bad validators.
	BadValidators []parachaintypes.AuthorityDiscoveryID
}

// NewSessionCache creates a session cache querying the given runtime and
// checking our validator identity against the given keystore.
// Cache sizes below 1 default to DefaultSessionIndexCacheSize and DefaultSessionInfoCacheSize.
func NewSessionCache(ks keystore.KeypairGetter, runtime RuntimeAPI, cfg Config) (*SessionCache, error) {
	cfg.setDefaults()

	sessionIndexCache, err := lru.New[common.Hash, parachaintypes.SessionIndex](cfg.SessionIndexCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating session index cache: %w", err)
	}

	sessionInfoCache, err := lru.NewWithEvict[parachaintypes.SessionIndex, *SessionInfo](
		cfg.SessionInfoCacheSize,
		func(sessionIndex parachaintypes.SessionIndex, _ *SessionInfo) {
			logger.Debugf("evicting session info for session %d", sessionIndex)
		})
	if err != nil {
		return nil, fmt.Errorf("creating session info cache: %w", err)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec
	}

	return &SessionCache{
		sessionIndexCache: sessionIndexCache,
		sessionInfoCache:  sessionInfoCache,
		keystore:          ks,
		runtime:           runtime,
		rand:              rng,
	}, nil
}

// WithSessionInfo retrieves the session info for the children of the given relay parent
// and calls withInfo with it.
//
// It returns false if we are not a validator in the session, in which case withInfo is
// not called. withInfo must not keep a reference to the session info, it is owned by
// the cache and may be reordered or evicted after the call returns.
//
// Use this over FetchSessionInfo if all you need is to read the session info,
// as it avoids a copy.
func (c *SessionCache) WithSessionInfo(
	ctx context.Context,
	parent common.Hash,
	withInfo func(info *SessionInfo),
) (isValidator bool, err error) {
	sessionIndex, err := c.sessionIndex(ctx, parent)
	if err != nil {
		return false, err
	}

	if info, ok := c.sessionInfoCache.Get(sessionIndex); ok {
		sessionInfoCacheHits.Inc()
		withInfo(info)
		return true, nil
	}
	sessionInfoCacheMisses.Inc()

	info, err := c.queryInfoFromRuntime(ctx, parent, sessionIndex)
	if err != nil {
		return false, err
	}

	if info == nil {
		nonValidatorSessions.Inc()
		logger.Debugf("not a validator in session %d", sessionIndex)
		return false, nil
	}

	withInfo(info)
	c.sessionInfoCache.Add(sessionIndex, info)
	return true, nil
}

// WithSessionInfo calls withInfo with the session info for the children of the given
// relay parent and returns its result. isValidator is false if we are not a validator
// in the session.
func WithSessionInfo[R any](
	ctx context.Context,
	cache *SessionCache,
	parent common.Hash,
	withInfo func(info *SessionInfo) R,
) (result R, isValidator bool, err error) {
	isValidator, err = cache.WithSessionInfo(ctx, parent, func(info *SessionInfo) {
		result = withInfo(info)
	})
	return result, isValidator, err
}

// FetchSessionInfo returns a copy of the session info for the children of the given
// relay parent, or nil if we are not a validator in the session.
//
// The copy is not updated by later calls to ReportBad.
func (c *SessionCache) FetchSessionInfo(ctx context.Context, parent common.Hash) (*SessionInfo, error) {
	var snapshot *SessionInfo
	_, err := c.WithSessionInfo(ctx, parent, func(info *SessionInfo) {
		snapshot = info.Clone()
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// ReportBad makes sure unresponsive or misbehaving validators are tried last.
//
// Validators in a group are tried in reverse order, so the reported validators are
// moved to the beginning of their group. Reported validators not in the group are
// ignored. The cache is left untouched if an error is returned.
func (c *SessionCache) ReportBad(report BadValidators) error {
	session, ok := c.sessionInfoCache.Peek(report.SessionIndex)
	if !ok {
		badValidatorReports.WithLabelValues(reportOutcomeSessionMissing).Inc()
		return fmt.Errorf("%w: session %d", ErrSessionNotCached, report.SessionIndex)
	}

	if int(report.GroupIndex) >= len(session.ValidatorGroups) {
		badValidatorReports.WithLabelValues(reportOutcomeGroupMissing).Inc()
		return fmt.Errorf("%w: group %d in session %d with %d groups",
			ErrValidatorGroupNotFound, report.GroupIndex, report.SessionIndex, len(session.ValidatorGroups))
	}

	group := session.ValidatorGroups[report.GroupIndex]
	session.ValidatorGroups[report.GroupIndex] = putFirst(group, report.BadValidators)
	// a reported session is in use
	c.sessionInfoCache.Get(report.SessionIndex)

	badValidatorReports.WithLabelValues(reportOutcomeReordered).Inc()
	logger.Debugf("deprioritised %d validator(s) in group %d of session %d",
		len(report.BadValidators), report.GroupIndex, report.SessionIndex)
	return nil
}

// putFirst returns the group with the given validators moved to its front, in the order
// given. Validators not in the group and repeated validators are skipped.
func putFirst(group, validators []parachaintypes.AuthorityDiscoveryID) []parachaintypes.AuthorityDiscoveryID {
	members := make(map[parachaintypes.AuthorityDiscoveryID]struct{}, len(group))
	for _, v := range group {
		members[v] = struct{}{}
	}

	reordered := make([]parachaintypes.AuthorityDiscoveryID, 0, len(group))
	moved := make(map[parachaintypes.AuthorityDiscoveryID]struct{}, len(validators))
	for _, v := range validators {
		if _, ok := members[v]; !ok {
			continue
		}
		if _, ok := moved[v]; ok {
			continue
		}
		moved[v] = struct{}{}
		reordered = append(reordered, v)
	}

	for _, v := range group {
		if _, ok := moved[v]; !ok {
			reordered = append(reordered, v)
		}
	}
	return reordered
}

func (c *SessionCache) sessionIndex(ctx context.Context, parent common.Hash) (parachaintypes.SessionIndex, error) {
	if index, ok := c.sessionIndexCache.Get(parent); ok {
		sessionIndexCacheHits.Inc()
		return index, nil
	}
	sessionIndexCacheMisses.Inc()

	index, err := c.runtime.SessionIndexForChild(ctx, parent)
	if err != nil {
		return 0, fmt.Errorf("%w: session index for child of %s: %w", ErrQueryFailed, parent, err)
	}

	c.sessionIndexCache.Add(parent, index)
	return index, nil
}

// queryInfoFromRuntime fetches the session info of the given session and localizes it.
// It returns nil if we are not a validator in the session.
func (c *SessionCache) queryInfoFromRuntime(
	ctx context.Context,
	parent common.Hash,
	sessionIndex parachaintypes.SessionIndex,
) (*SessionInfo, error) {
	info, err := c.runtime.SessionInfo(ctx, parent, sessionIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: session info for session %d: %w", ErrQueryFailed, sessionIndex, err)
	}
	if info == nil {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchSession, sessionIndex)
	}

	ourID, ourIndex := util.SigningKeyAndIndex(info.Validators, c.keystore)
	if ourID == nil {
		return nil, nil
	}

	ourGroup, ok := findGroup(info.ValidatorGroups, ourIndex)
	if !ok {
		return nil, fmt.Errorf("%w: validator %d of session %d is in no validator group",
			ErrInvariantViolation, ourIndex, sessionIndex)
	}

	validatorGroups := make([][]parachaintypes.AuthorityDiscoveryID, len(info.ValidatorGroups))
	for i, group := range info.ValidatorGroups {
		shuffled := append([]parachaintypes.ValidatorIndex(nil), group...)
		c.rand.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		// look up discovery keys right away
		discoveryKeys := make([]parachaintypes.AuthorityDiscoveryID, len(shuffled))
		for j, validatorIndex := range shuffled {
			if int(validatorIndex) >= len(info.DiscoveryKeys) {
				return nil, fmt.Errorf("%w: no discovery key for validator %d of group %d in session %d",
					ErrInvariantViolation, validatorIndex, i, sessionIndex)
			}
			discoveryKeys[j] = info.DiscoveryKeys[validatorIndex]
		}
		validatorGroups[i] = discoveryKeys
	}

	return &SessionInfo{
		SessionIndex:    sessionIndex,
		ValidatorGroups: validatorGroups,
		OurIndex:        ourIndex,
		OurGroup:        ourGroup,
	}, nil
}

func findGroup(groups [][]parachaintypes.ValidatorIndex, validator parachaintypes.ValidatorIndex) (
	parachaintypes.GroupIndex, bool) {
	for i, group := range groups {
		for _, v := range group {
			if v == validator {
				return parachaintypes.GroupIndex(i), true
			}
		}
	}
	return 0, false
}
