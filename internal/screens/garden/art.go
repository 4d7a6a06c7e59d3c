package garden

import "github.com/verdantapp/verdant/internal/growth"

// treeArt returns the ASCII art for a growth stage.
func treeArt(stage growth.Stage) string {
	switch stage {
	case growth.StagePot:
		return `
   _____
   \   /
    \_/
   [___]`
	case growth.StageSeed:
		return `
    (.)
   _____
   \ ∙ /
    \_/
   [___]`
	case growth.StageSapling:
		return `
     |
    \|/
     |
   __|__
   \   /
    \_/`
	case growth.StageGrowing:
		return `
    \ /
   --|--
    /|\
     |
   __|__
   \   /
    \_/`
	case growth.StageMature:
		return `
    ###
   #####
  #######
    |||
    |||
  ~~~~~~~`
	case growth.StageBlooming:
		return `
   @#@#@
  #@###@#
  @#####@
    |||
    |||
  ~~~~~~~`
	case growth.StageTree:
		return `
     ^
    ^^^
   ^^^^^
  ^^^^^^^
 ^^^^^^^^^
    |||
    |||
 ~~~~~~~~~`
	case growth.StageForest:
		return `
   ^   ^   ^
  ^^^ ^^^ ^^^
 ^^^^^^^^^^^^^
  ||   ||  ||
 ~~~~~~~~~~~~~`
	default:
		return ""
	}
}
