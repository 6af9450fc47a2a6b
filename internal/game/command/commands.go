// Package command provides the verb registry, the input parser, and the
// interpreter that applies one command to a session per turn.
package command

// Categories for organizing commands in help output.
const (
	CategoryMovement    = "movement"
	CategoryInteraction = "interaction"
	CategorySpecial     = "special actions"
	CategoryStatus      = "status"
)

// categoryOrder is the order categories are listed in help.
var categoryOrder = []string{
	CategoryMovement,
	CategoryInteraction,
	CategorySpecial,
	CategoryStatus,
}

// Handler identifiers mapping commands to interpreter effects.
const (
	HandlerLook      = "look"
	HandlerInventory = "inventory"
	HandlerGo        = "go"
	HandlerSwipe     = "swipe"
	HandlerTake      = "take"
	HandlerDrop      = "drop"
	HandlerUse       = "use"
	HandlerUpload    = "upload"
	HandlerWear      = "wear"
	HandlerTalk      = "talk"
	HandlerRead      = "read"
	HandlerExamine   = "examine"
	HandlerScore     = "score"
	HandlerHelp      = "help"
	HandlerQuit      = "quit"
)

// Command defines a player-invocable verb.
type Command struct {
	// Name is the canonical verb.
	Name string
	// Aliases are alternate verbs for the same action.
	Aliases []string
	// Usage shows the argument shape in help, e.g. "go [direction]".
	Usage string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command in help output.
	Category string
	// Handler selects the interpreter effect.
	Handler string
}

// BuiltinCommands returns the fixed verb table of the game.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "go", Usage: "go [north/south/east/west]", Help: "Walk through an exit", Category: CategoryMovement, Handler: HandlerGo},

		{Name: "take", Usage: "take [item]", Help: "Pick up an item in the room", Category: CategoryInteraction, Handler: HandlerTake},
		{Name: "drop", Usage: "drop [item]", Help: "Put down a carried item", Category: CategoryInteraction, Handler: HandlerDrop},
		{Name: "use", Usage: "use [item]", Help: "Use a carried item", Category: CategoryInteraction, Handler: HandlerUse},
		{Name: "talk", Usage: "talk", Help: "Talk to the character in the room", Category: CategoryInteraction, Handler: HandlerTalk},
		{Name: "examine", Usage: "examine [item]", Help: "Inspect a carried item", Category: CategoryInteraction, Handler: HandlerExamine},
		{Name: "read", Usage: "read [item]", Help: "Read a carried document", Category: CategoryInteraction, Handler: HandlerRead},

		{Name: "swipe", Usage: "swipe [card name]", Help: "Use a key card on a locked door", Category: CategorySpecial, Handler: HandlerSwipe},
		{Name: "upload", Usage: "upload [flash drive name]", Help: "Load data into the Main Server Terminal", Category: CategorySpecial, Handler: HandlerUpload},
		{Name: "wear", Usage: "wear [suit name]", Help: "Put on protective gear", Category: CategorySpecial, Handler: HandlerWear},

		{Name: "look", Aliases: []string{"explore"}, Usage: "look", Help: "Describe the current room", Category: CategoryStatus, Handler: HandlerLook},
		{Name: "inventory", Aliases: []string{"inv", "with"}, Usage: "inventory", Help: "List what you carry", Category: CategoryStatus, Handler: HandlerInventory},
		{Name: "score", Usage: "score", Help: "Show your score", Category: CategoryStatus, Handler: HandlerScore},
		{Name: "help", Usage: "help", Help: "Show available commands", Category: CategoryStatus, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit"}, Usage: "quit", Help: "Leave the game", Category: CategoryStatus, Handler: HandlerQuit},
	}
}
