package main

import (
	"fmt"

	"mydrip/internal/domain/entity"
	domainerrors "mydrip/internal/domain/errors"
	"mydrip/internal/errors"
	"mydrip/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var (
		name     string
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with a demo account and wardrobe",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			_, err = env.account.Register(ctx, &usecase.RegisterInput{
				Name:     name,
				Email:    email,
				Password: password,
			})
			switch {
			case err == nil:
				fmt.Printf("Registered account %s\n", email)
			case errors.Is(err, domainerrors.ErrUserAlreadyExists):
				fmt.Println("Account already exists, keeping it")
			default:
				return errors.Wrap(err, "failed to register account")
			}

			seedItems := []*usecase.AddItemInput{
				{Name: "Camiseta Branca", Category: entity.CategoryTop.String(), Color: "Branco", Seasons: []string{"spring", "summer"}, Tags: []string{"casual"}},
				{Name: "Calça Jeans", Category: entity.CategoryBottom.String(), Color: "Azul", Seasons: []string{"autumn", "winter"}},
				{Name: "Tênis Branco", Category: entity.CategoryShoes.String(), Color: "Branco", Seasons: []string{"spring", "summer", "autumn", "winter"}},
				{Name: "Jaqueta Jeans", Category: entity.CategoryTop.String(), Color: "Azul", Seasons: []string{"autumn", "winter"}, Tags: []string{"casual"}},
			}

			itemIDs := make([]uuid.UUID, 0, len(seedItems))
			for _, input := range seedItems {
				item, err := env.wardrobe.AddItem(ctx, input)
				if err != nil {
					return errors.Wrapf(err, "failed to seed item %s", input.Name)
				}
				itemIDs = append(itemIDs, item.ID)
			}
			fmt.Printf("Added %d items\n", len(itemIDs))

			outfit, err := env.outfit.CreateOutfit(ctx, &usecase.CreateOutfitInput{
				Name:    "Look Casual",
				ItemIDs: itemIDs,
				Rating:  5,
			})
			if err != nil {
				return errors.Wrap(err, "failed to seed outfit")
			}
			fmt.Printf("Created outfit %s\n", outfit.Name)

			if _, err := env.measurement.ApplyPreset(ctx, "M"); err != nil {
				return errors.Wrap(err, "failed to seed measurements")
			}
			fmt.Println("Applied measurement preset M")

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Demo", "Account display name")
	cmd.Flags().StringVar(&email, "email", "demo@mydrip.local", "Account email")
	cmd.Flags().StringVar(&password, "password", "demo-password", "Account password")

	return cmd
}
