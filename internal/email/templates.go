package email

import (
	"fmt"
	"html"
)

func welcomeEmailTemplate(name, profileURL string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h1>Welcome to UnLinked, %s!</h1>
			<p>We are glad to have you with us. Fill out your profile and start
			connecting with people you know.</p>
			<p><a href="%s">Open your profile</a></p>
		</div>`,
		html.EscapeString(name), profileURL)
}

func commentNotificationEmailTemplate(recipientName, commenterName, postURL, commentContent string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h1>New comment on your post</h1>
			<p>Hi %s,</p>
			<p>%s commented on your post:</p>
			<blockquote>%s</blockquote>
			<p><a href="%s">View the post</a></p>
		</div>`,
		html.EscapeString(recipientName), html.EscapeString(commenterName),
		html.EscapeString(commentContent), postURL)
}

func connectionAcceptedEmailTemplate(senderName, recipientName string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h1>Connection accepted</h1>
			<p>Hi %s,</p>
			<p>%s accepted your connection request.</p>
		</div>`,
		html.EscapeString(senderName), html.EscapeString(recipientName))
}
