package usecase

// HelpText is the reply to /start and /help in private chats.
const HelpText = "Hi! I keep group chats tidy by deleting \"member joined\" and \"member left\" service messages.\n\n" +
	"Add me to a group and grant me the \"Delete messages\" admin right - that's all the setup there is.\n\n" +
	"If an owner is configured, I only stay in groups the owner added me to."
