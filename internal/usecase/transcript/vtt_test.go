package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVTT_ExtractsCues(t *testing.T) {
	raw := "1\n00:00:00.000 --> 00:00:02.000\nHello <i>world</i>\n\n2\n00:00:02.000 --> 00:00:04.000\nFoo bar\n"

	assert.Equal(t, "Hello world\nFoo bar", NormalizeVTT(raw))
}

func TestNormalizeVTT_NoTimingLines(t *testing.T) {
	assert.Equal(t, "", NormalizeVTT("just some plain text\nwith two lines"))
	assert.Equal(t, "", NormalizeVTT(""))
	assert.Equal(t, "", NormalizeVTT("WEBVTT\n\n"))
}

func TestNormalizeVTT_ZoomTranscript(t *testing.T) {
	raw := "WEBVTT\r\n\r\n" +
		"1\r\n00:00:01.020 --> 00:00:04.500\r\nAlice Smith: Good morning everyone.\r\n\r\n" +
		"2\r\n00:00:04.500 --> 00:00:08.000\r\n<v Bob>Bob Jones: Morning.\r\nLet's start with the budget.\r\n\r\n" +
		"3\r\n00:00:08.000 --> 00:00:09.000\r\n\r\n" +
		"4\r\n00:00:09.000 --> 00:00:11.000\r\n  Alice Smith: Sounds good.  \r\n"

	want := "Alice Smith: Good morning everyone.\n" +
		"Bob Jones: Morning. Let's start with the budget.\n" +
		"Alice Smith: Sounds good."
	assert.Equal(t, want, NormalizeVTT(raw))
}

func TestNormalizeVTT_DropsConsecutiveDuplicateCues(t *testing.T) {
	raw := "00:00:00.000 --> 00:00:01.000\nSame line\n\n" +
		"00:00:01.000 --> 00:00:02.000\nSame line\n\n" +
		"00:00:02.000 --> 00:00:03.000\nOther\n\n" +
		"00:00:03.000 --> 00:00:04.000\nSame line\n"

	assert.Equal(t, "Same line\nOther\nSame line", NormalizeVTT(raw))
}

func TestNormalizeVTT_TimingWithCueSettings(t *testing.T) {
	raw := "00:00:00.000 --> 00:00:01.000 align:start position:10%\n<b>Bold</b> <c.yellow>move</c>\n"

	assert.Equal(t, "Bold move", NormalizeVTT(raw))
}
