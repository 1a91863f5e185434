package authority

import (
	"github.com/zjrosen/swatch/internal/log"
	palette "github.com/zjrosen/swatch/internal/palette/domain"
)

// Manager performs the ownership check and one-way migration for a
// single registry instance. It is invoked at load time and before
// every mutating public call; when the slot is already owned the check
// is a cheap identity comparison.
type Manager struct {
	reg   *palette.Registry
	slot  *Slot
	token *registryAccessor
	ids   ResolverChain
	names ResolverChain
}

// NewManager wires a registry to an accessor slot. The foreign table
// may be nil when no third-party implementation is loaded; the resolver
// chain then skips straight from the built-in table to the stringified
// index.
func NewManager(reg *palette.Registry, slot *Slot, foreign ForeignTable) *Manager {
	return &Manager{
		reg:   reg,
		slot:  slot,
		token: &registryAccessor{reg: reg},
		ids: ResolverChain{
			BuiltinIDResolver(),
			ForeignIDResolver(foreign),
			IndexFallback(),
		},
		names: ResolverChain{
			BuiltinNameResolver(),
			ForeignNameResolver(foreign),
		},
	}
}

// Owned reports whether this registry's accessor is the one installed.
func (m *Manager) Owned() bool {
	return m.slot.OwnedBy(m.token)
}

// Accessor returns this registry's accessor token. Exposed so the host
// can hand queries to whatever the slot currently holds.
func (m *Manager) Accessor() Accessor {
	return m.token
}

// EnsureAuthority makes the registry authoritative over the accessor
// slot, pulling in any entries the currently-installed implementation
// owns that this registry is missing. Idempotent and safe to call
// unconditionally. Returns the number of entries migrated in.
//
// Migration walks indices strictly ascending; later entries may depend
// on earlier ones existing. A missing index short of the claimed count
// is a tolerated gap: migration stops there, logs it, and authority is
// still taken for the entries successfully migrated.
func (m *Manager) EnsureAuthority() int {
	if m.Owned() {
		return 0
	}

	migrated := 0
	if current := m.slot.Current(); current != nil {
		hostCount := current.ColorCount()
		localCount := m.reg.Count()
		for index := localCount + 1; index <= hostCount; index++ {
			colors, ok := current.ColorsAt(index)
			if !ok {
				log.Warn(log.CatAuthority, "migration gap, stopping early",
					"index", index, "claimed", hostCount, "migrated", migrated)
				break
			}

			id, _ := m.ids.Resolve(index)
			name, ok := m.names.Resolve(index)
			if !ok {
				name = id
			}

			if err := m.reg.RegisterAt(id, index, name, colors); err != nil {
				log.ErrorErr(log.CatAuthority, "migration entry rejected, stopping early", err,
					"index", index, "id", id)
				break
			}
			migrated++
		}
	}

	m.slot.Install(m.token)
	log.Info(log.CatAuthority, "accessor slot taken over",
		"registry", m.reg.GUID(), "version", m.reg.Version(), "migrated", migrated)
	return migrated
}
