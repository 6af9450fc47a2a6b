package world

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/omega/internal/game/inventory"
)

//go:embed content/omega.yaml
var defaultContent []byte

// yamlWorldFile is the top-level YAML structure for world files.
type yamlWorldFile struct {
	World yamlWorld `yaml:"world" validate:"required"`
}

// yamlWorld is the YAML representation of a world definition.
type yamlWorld struct {
	StartRoom    string     `yaml:"start_room" validate:"required"`
	ExitRoom     string     `yaml:"exit_room" validate:"required"`
	AntidoteItem string     `yaml:"antidote_item" validate:"required"`
	Lore         yamlLore   `yaml:"lore"`
	Items        []yamlItem `yaml:"items" validate:"required,min=1,dive"`
	NPCs         []yamlNPC  `yaml:"npcs" validate:"dive"`
	Rooms        []yamlRoom `yaml:"rooms" validate:"required,min=1,dive"`
}

type yamlLore struct {
	Item string `yaml:"item"`
	Text string `yaml:"text" validate:"required_with=Item"`
}

// yamlItem is the YAML representation of a catalog item.
type yamlItem struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Usage       string `yaml:"usage" validate:"omitempty,usage"`
	Points      int    `yaml:"points" validate:"min=0"`
}

// yamlNPC is the YAML representation of a non-player character.
type yamlNPC struct {
	Name     string `yaml:"name" validate:"required"`
	Grants   string `yaml:"grants"`
	Reward   int    `yaml:"reward" validate:"min=0"`
	Greeting string `yaml:"greeting" validate:"required"`
	Farewell string `yaml:"farewell" validate:"required"`
}

// yamlRoom is the YAML representation of a room.
type yamlRoom struct {
	Name          string     `yaml:"name" validate:"required"`
	Description   string     `yaml:"description" validate:"required"`
	Exits         []yamlExit `yaml:"exits" validate:"dive"`
	Items         []string   `yaml:"items" validate:"dive,required"`
	NPC           string     `yaml:"npc"`
	Locks         []yamlLock `yaml:"locks" validate:"dive"`
	SpecialAction string     `yaml:"special_action" validate:"omitempty,special_action"`
}

// yamlExit is the YAML representation of an exit.
type yamlExit struct {
	Direction string `yaml:"direction" validate:"required,direction"`
	Target    string `yaml:"target" validate:"required"`
}

// yamlLock gates one direction behind a key item and names the room the key opens onto.
type yamlLock struct {
	Direction string `yaml:"direction" validate:"required,direction"`
	Key       string `yaml:"key" validate:"required"`
	Target    string `yaml:"target" validate:"required"`
}

// newContentValidator returns a validator that knows the content tags.
func newContentValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
		return Direction(strings.ToLower(fl.Field().String())).IsStandard()
	})
	_ = v.RegisterValidation("usage", func(fl validator.FieldLevel) bool {
		_, err := inventory.ParseUsage(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("special_action", func(fl validator.FieldLevel) bool {
		_, err := ParseSpecialAction(fl.Field().String())
		return err == nil
	})
	return v
}

// formatValidationError flattens validator field errors into one message per field.
func formatValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.TrimPrefix(fe.Namespace(), "yamlWorldFile.")
		switch fe.Tag() {
		case "required", "required_with":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: invalid %s %q", field, fe.Tag(), fmt.Sprint(fe.Value())))
		}
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

// LoadDefault parses and validates the embedded Project Omega world.
//
// Postcondition: Returns a fresh, validated World or a non-nil error.
func LoadDefault() (*World, error) {
	return LoadFromBytes(defaultContent)
}

// LoadFromFile reads and validates a single world YAML file.
//
// Precondition: path must point to a valid YAML world file.
// Postcondition: Returns a validated World or a non-nil error.
func LoadFromFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file %s: %w", path, err)
	}
	w, err := LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading world from %s: %w", path, err)
	}
	return w, nil
}

// LoadFromBytes parses and validates a world from YAML bytes. Every call
// builds fresh rooms and items, so two loads never share mutable state.
//
// Precondition: data must be valid YAML conforming to the world schema.
// Postcondition: Returns a validated World or a non-nil error.
func LoadFromBytes(data []byte) (*World, error) {
	var file yamlWorldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing world YAML: %w", err)
	}
	if err := newContentValidator().Struct(file); err != nil {
		return nil, fmt.Errorf("validating world fields: %w", formatValidationError(err))
	}

	w, err := convertYAMLWorld(file.World)
	if err != nil {
		return nil, fmt.Errorf("converting world: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// convertYAMLWorld converts the parsed YAML structures into domain types.
func convertYAMLWorld(yw yamlWorld) (*World, error) {
	w := &World{
		Rooms:        make(map[string]*Room, len(yw.Rooms)),
		Catalog:      inventory.NewCatalog(),
		NPCs:         make(map[string]NPC, len(yw.NPCs)),
		StartRoom:    yw.StartRoom,
		ExitRoom:     yw.ExitRoom,
		AntidoteItem: yw.AntidoteItem,
		LoreItem:     yw.Lore.Item,
		LoreText:     strings.TrimSpace(yw.Lore.Text),
	}

	for _, yi := range yw.Items {
		usage, err := inventory.ParseUsage(yi.Usage)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", yi.Name, err)
		}
		if err := w.Catalog.Register(&inventory.Item{
			Name:        yi.Name,
			Description: strings.TrimSpace(yi.Description),
			Usage:       usage,
			Points:      yi.Points,
		}); err != nil {
			return nil, err
		}
	}

	for _, yn := range yw.NPCs {
		if _, dup := w.NPCs[yn.Name]; dup {
			return nil, fmt.Errorf("duplicate npc %q", yn.Name)
		}
		w.NPCs[yn.Name] = NPC{
			Name:     yn.Name,
			Grants:   yn.Grants,
			Reward:   yn.Reward,
			Greeting: strings.TrimSpace(yn.Greeting),
			Farewell: strings.TrimSpace(yn.Farewell),
		}
	}

	for _, yr := range yw.Rooms {
		if _, dup := w.Rooms[yr.Name]; dup {
			return nil, fmt.Errorf("duplicate room %q", yr.Name)
		}
		action, err := ParseSpecialAction(yr.SpecialAction)
		if err != nil {
			return nil, fmt.Errorf("room %q: %w", yr.Name, err)
		}
		room := &Room{
			Name:          yr.Name,
			Description:   strings.TrimSpace(yr.Description),
			Items:         inventory.NewContainer(),
			NPC:           yr.NPC,
			SpecialAction: action,
		}
		for _, ye := range yr.Exits {
			dir := Direction(strings.ToLower(ye.Direction))
			if _, dup := room.ExitForDirection(dir); dup {
				return nil, fmt.Errorf("room %q: duplicate exit %q", yr.Name, dir)
			}
			room.Exits = append(room.Exits, Exit{Direction: dir, Target: ye.Target})
		}
		if len(yr.Locks) > 0 {
			room.RequiredKey = make(map[Direction]string, len(yr.Locks))
			room.ExitsWithKey = make(map[Direction]string, len(yr.Locks))
		}
		for _, yl := range yr.Locks {
			dir := Direction(strings.ToLower(yl.Direction))
			room.RequiredKey[dir] = yl.Key
			room.ExitsWithKey[dir] = yl.Target
		}
		for _, name := range yr.Items {
			it, ok := w.Catalog.Item(name)
			if !ok {
				return nil, fmt.Errorf("room %q: unknown item %q", yr.Name, name)
			}
			if err := room.Items.Add(it); err != nil {
				return nil, fmt.Errorf("room %q: %w", yr.Name, err)
			}
		}
		w.Rooms[room.Name] = room
	}

	return w, nil
}
