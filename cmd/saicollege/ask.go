package main

import (
	"fmt"
	"strings"

	"saicollege/internal/chatbot"
	"saicollege/internal/service"
	"saicollege/pkg/logger"

	"github.com/spf13/cobra"
)

func askCMD() *cobra.Command {
	var lang string
	ask := &cobra.Command{
		Use:   "ask <message>",
		Short: "Answer one chatbot message against the configured knowledge base",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, appLogger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			st, err := openStores(cmd.Context(), cfg, appLogger)
			if err != nil {
				return err
			}
			defer st.close()

			knowledge := service.NewKnowledgeService(st.knowledge, appLogger)
			knowledge.Reload(cmd.Context())

			resolver := chatbot.NewResolver(st.queries, appLogger)
			res := resolver.Resolve(cmd.Context(), strings.Join(args, " "), chatbot.ParseLanguage(lang), knowledge.Snapshot())

			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return nil
		},
	}
	ask.Flags().StringVar(&lang, "lang", string(chatbot.DefaultLanguage), "reply language: Hindi, English or Hinglish")

	return ask
}
