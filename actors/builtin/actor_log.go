package builtin

import (
	"strings"
	"sync"

	rtt "github.com/filecoin-project/go-state-types/rt"
	"github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	"github.com/tokenvest/vesting-actors/actors/runtime"
)

// Per-actor overrides of the level at which actors log, keyed by actor code.
// Actors pass their default level through GetActorLogLevel, so an override raises or lowers every line of an actor.
var actorLogLevels = struct {
	sync.RWMutex
	byCode map[cid.Cid]rtt.LogLevel
}{byCode: map[cid.Cid]rtt.LogLevel{}}

var logLevelNames = map[string]rtt.LogLevel{
	"debug": rtt.DEBUG,
	"info":  rtt.INFO,
	"warn":  rtt.WARN,
	"error": rtt.ERROR,
}

func SetActorsLogLevel(logLevel rtt.LogLevel, actors ...runtime.VMActor) {
	actorLogLevels.Lock()
	defer actorLogLevels.Unlock()
	for _, actor := range actors {
		actorLogLevels.byCode[actor.Code()] = logLevel
	}
}

// Returns the overridden level for an actor, or the level the actor asked for.
func GetActorLogLevel(actor runtime.VMActor, defValue rtt.LogLevel) rtt.LogLevel {
	actorLogLevels.RLock()
	defer actorLogLevels.RUnlock()
	if level, ok := actorLogLevels.byCode[actor.Code()]; ok {
		return level
	}
	return defValue
}

// Drops any level overrides, restoring the defaults for every actor.
func ResetActorsLogLevel() {
	actorLogLevels.Lock()
	defer actorLogLevels.Unlock()
	actorLogLevels.byCode = map[cid.Cid]rtt.LogLevel{}
}

// Applies overrides written as a comma-separated list of `actor=level`, e.g. "vesting=debug,token=warn".
// Actors are named by the last segment of their code name. Nothing is applied if any entry is invalid.
func ConfigureActorsLogLevel(config string) error {
	overrides := map[cid.Cid]rtt.LogLevel{}
	for _, entry := range strings.Split(config, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			return xerrors.Errorf("log level entry %q is not of the form actor=level", entry)
		}
		code, ok := actorCodeByShortName(strings.TrimSpace(parts[0]))
		if !ok {
			return xerrors.Errorf("unknown actor %q", parts[0])
		}
		level, ok := logLevelNames[strings.ToLower(strings.TrimSpace(parts[1]))]
		if !ok {
			return xerrors.Errorf("unknown log level %q for actor %q", parts[1], parts[0])
		}
		overrides[code] = level
	}

	actorLogLevels.Lock()
	defer actorLogLevels.Unlock()
	for code, level := range overrides {
		actorLogLevels.byCode[code] = level
	}
	return nil
}

func actorCodeByShortName(name string) (cid.Cid, bool) {
	for _, code := range []cid.Cid{SystemActorCodeID, AccountActorCodeID, TokenActorCodeID, VestingActorCodeID} {
		full := ActorNameByCode(code)
		if full[strings.LastIndex(full, "/")+1:] == name {
			return code, true
		}
	}
	return cid.Undef, false
}
