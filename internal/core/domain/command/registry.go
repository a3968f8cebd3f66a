package command

import (
	"errors"
	"fmt"
	"kubbot/internal/config"
	"kubbot/internal/core/port"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrRegistryNotInitialized = errors.New("can't fetch command, registry not initialized")
	ErrCommandNotFound        = errors.New("command not found")
	ErrNameTaken              = errors.New("command name already registered")
	ErrEmptyName              = errors.New("command name is empty")
)

// Registry maps command names and aliases to their holders. Names are matched case-insensitively. It is populated
// once at startup and only read afterwards, so lookups need no locking.
type Registry struct {
	commands map[string]*Holder
	primary  []*Holder
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Holder)}
}

func (r *Registry) Register(cmd port.Command) error {
	if r.commands == nil {
		r.commands = make(map[string]*Holder)
	}

	name := normalize(cmd.Name())
	if name == "" {
		return ErrEmptyName
	}

	for _, sig := range cmd.Arguments() {
		if err := sig.Type.Validate(); err != nil {
			return fmt.Errorf("command %s, argument %s: %w", name, sig.Name, err)
		}
	}

	keys := []string{name}
	for _, alias := range port.AliasesOf(cmd) {
		alias = normalize(alias)
		if alias == "" || slices.Contains(keys, alias) {
			continue
		}
		keys = append(keys, alias)
	}

	for _, key := range keys {
		if _, ok := r.commands[key]; ok {
			return fmt.Errorf("%w: %s", ErrNameTaken, key)
		}
	}

	holder := NewHolder(cmd)
	for _, key := range keys {
		r.commands[key] = holder
	}
	r.primary = append(r.primary, holder)

	log.Info().Str("command", name).Strs("aliases", keys[1:]).Msg("adding command to registry")

	return nil
}

// RegisterFactories builds one command per factory from the configuration and registers them in order.
func (r *Registry) RegisterFactories(cfg *config.Config, factories ...port.CommandFactory) error {
	for _, f := range factories {
		if err := r.Register(f.Make(cfg)); err != nil {
			return err
		}
	}

	return nil
}

func (r *Registry) Get(name string) (port.CommandRunner, error) {
	log.Debug().Str("command", name).Msg("fetching command from registry")

	if r.commands == nil {
		return nil, ErrRegistryNotInitialized
	}

	holder, ok := r.commands[normalize(name)]
	if !ok {
		return nil, ErrCommandNotFound
	}

	return holder, nil
}

func (r *Registry) Lookup(name string) (port.Command, bool) {
	holder, ok := r.commands[normalize(name)]
	if !ok {
		return nil, false
	}

	return holder.Command(), true
}

func (r *Registry) Commands() []port.Command {
	cmds := make([]port.Command, len(r.primary))
	for i, h := range r.primary {
		cmds[i] = h.Command()
	}

	slices.SortFunc(cmds, func(a, b port.Command) int {
		return strings.Compare(normalize(a.Name()), normalize(b.Name()))
	})

	return cmds
}

func (r *Registry) ListCommands() []string {
	names := make([]string, len(r.primary))
	for i, h := range r.primary {
		names[i] = normalize(h.Command().Name())
	}

	slices.Sort(names)

	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
