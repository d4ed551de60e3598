package terminal

// Message is one parsed input line: the action name and its arguments.
type Message struct {
	Action string
	Args   []string
}

const (
	actionMove = "move"
	actionJump = "jump"
	actionNew  = "new"
	actionShow = "show"
	actionHelp = "help"
	actionQuit = "quit"
)

const helpText = `commands:
  move <0-8>   play a cell (a bare number works too)
  jump <step>  go back to a step from the move list
  new          start a new game
  show         print the board again
  help         print this text
  quit         leave
`
