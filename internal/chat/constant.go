package chat

const MaxMessageChars = 4000
