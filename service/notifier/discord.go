package notifier

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/warrantify/goapi/base/ctx"
	"github.com/warrantify/goapi/domain"
	"github.com/warrantify/goapi/domain/collection"
	"github.com/warrantify/goapi/domain/warranty"
)

type DiscordConfig struct {
	BotKey    string
	ChannelId string
	// tx links are rendered as ExplorerUrl + "/tx/" + hash
	ExplorerUrl string
	IpfsGateway string
}

type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discordImpl struct {
	config  DiscordConfig
	discord embedSender
}

func NewDiscord(config DiscordConfig) (Notifier, error) {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", config.BotKey))
	if err != nil {
		return nil, err
	}
	return &discordImpl{config, discord}, nil
}

func (im *discordImpl) CollectionCreated(c ctx.Ctx, owner domain.Address, params *collection.CreateParams, res *collection.CreateResult) {
	im.send(c, im.collectionCreatedEmbed(owner, params, res))
}

func (im *discordImpl) WarrantyMinted(c ctx.Ctx, collectionAddr domain.Address, serial string, res *warranty.MintResult) {
	im.send(c, im.warrantyMintedEmbed(collectionAddr, serial, res))
}

func (im *discordImpl) send(c ctx.Ctx, msg *discordgo.MessageEmbed) {
	if _, err := im.discord.ChannelMessageSendEmbed(im.config.ChannelId, msg); err != nil {
		c.WithField("err", err).Warn("discord.ChannelMessageSendEmbed failed")
	}
}

func (im *discordImpl) collectionCreatedEmbed(owner domain.Address, params *collection.CreateParams, res *collection.CreateResult) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Warranty collection created!",
		Description: im.txUrl(res.Receipt),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Brand", Value: params.BrandName},
			{Name: "Product", Value: params.ProductName},
			{Name: "Collection", Value: fmt.Sprintf("%s (%s)", params.CollectionName, params.CollectionSymbol)},
			{Name: "Warranty", Value: fmt.Sprintf("%s months", collection.SecondsToMonths(res.WarrantyPeriodSeconds))},
			{Name: "Owner", Value: string(owner)},
		},
	}
}

func (im *discordImpl) warrantyMintedEmbed(collectionAddr domain.Address, serial string, res *warranty.MintResult) *discordgo.MessageEmbed {
	msg := &discordgo.MessageEmbed{
		Title:       "Warranty issued!",
		Description: im.txUrl(res.Receipt),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Collection", Value: string(collectionAddr)},
			{Name: "Serial", Value: serial},
			{Name: "Recipient", Value: string(res.Recipient)},
			{Name: "Metadata", Value: res.MetadataUri},
		},
	}
	if len(im.config.IpfsGateway) > 0 && strings.HasPrefix(res.ImageUri, "ipfs://") {
		msg.Image = &discordgo.MessageEmbedImage{
			URL: strings.TrimSuffix(im.config.IpfsGateway, "/") + "/" + strings.TrimPrefix(res.ImageUri, "ipfs://"),
		}
	}
	return msg
}

func (im *discordImpl) txUrl(receipt *domain.TxReceipt) string {
	if receipt == nil {
		return ""
	}
	if len(im.config.ExplorerUrl) == 0 {
		return string(receipt.TxHash)
	}
	return fmt.Sprintf("%s/tx/%s", strings.TrimSuffix(im.config.ExplorerUrl, "/"), receipt.TxHash)
}
