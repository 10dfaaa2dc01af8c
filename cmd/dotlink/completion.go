package dotlink

import (
	"fmt"

	"github.com/spf13/cobra"
)

const completionLong = `To load completions:

Bash:
  $ source <(dotlink completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ dotlink completion bash > /etc/bash_completion.d/dotlink
  # macOS:
  $ dotlink completion bash > /usr/local/etc/bash_completion.d/dotlink

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ dotlink completion zsh > "${fpath[1]}/_dotlink"

Fish:
  $ dotlink completion fish | source
  # To load completions for each session, execute once:
  $ dotlink completion fish > ~/.config/fish/completions/dotlink.fish

PowerShell:
  PS> dotlink completion powershell | Out-String | Invoke-Expression
`

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  completionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf("unsupported shell: %s", args[0])
		},
	}
}
