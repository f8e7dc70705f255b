package gmail

import (
	"fmt"

	"github.com/emersion/go-imap/v2"
)

// ListMailboxes returns the decoded names of every mailbox on the
// server, connecting lazily if needed.
func (s *Session) ListMailboxes() ([]string, error) {
	if err := s.ensureIMAP(); err != nil {
		return nil, err
	}

	boxes, err := s.imap.List("", "*", nil).Collect()
	if err != nil {
		return nil, fmt.Errorf("failed to list mailboxes: %w", err)
	}

	names := make([]string, 0, len(boxes))
	for _, b := range boxes {
		names = append(names, b.Mailbox)
	}
	return names, nil
}

// GetEmails lists up to limit messages from the mailbox. With
// unreadOnly the server-side search is restricted to unseen messages.
//
// The search returns sequence numbers in ascending server order; the
// last limit numbers are kept and returned without re-reversing, so the
// slice runs oldest-of-the-selection first. Sequence order is assigned
// by the server per session and is not necessarily chronological.
func (s *Session) GetEmails(mailbox string, limit int, unreadOnly bool) ([]Summary, error) {
	if mailbox == "" {
		mailbox = DefaultMailbox
	}
	if err := s.ensureIMAP(); err != nil {
		return nil, err
	}
	if err := s.selectMailbox(mailbox); err != nil {
		return nil, err
	}

	criteria := &imap.SearchCriteria{}
	if unreadOnly {
		criteria.NotFlag = []imap.Flag{imap.FlagSeen}
	}
	data, err := s.imap.Search(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	nums := data.AllSeqNums()
	if limit > 0 && len(nums) > limit {
		nums = nums[len(nums)-limit:]
	}

	raws, err := s.fetchRaw(nums)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(raws))
	for _, r := range raws {
		summaries = append(summaries, summarize(r.seqNum, r.raw))
	}
	return summaries, nil
}

// SearchEmails returns full details of every message in the mailbox
// whose Subject or From field contains query. No result cap is applied,
// so a broad query on a large mailbox returns the whole match set; an
// empty query matches every message.
func (s *Session) SearchEmails(query, mailbox string) ([]Detail, error) {
	if mailbox == "" {
		mailbox = DefaultMailbox
	}
	if err := s.ensureIMAP(); err != nil {
		return nil, err
	}
	if err := s.selectMailbox(mailbox); err != nil {
		return nil, err
	}

	// OR SUBJECT "query" FROM "query"
	criteria := &imap.SearchCriteria{
		Or: [][2]imap.SearchCriteria{{
			{Header: []imap.SearchCriteriaHeaderField{{Key: "Subject", Value: query}}},
			{Header: []imap.SearchCriteriaHeaderField{{Key: "From", Value: query}}},
		}},
	}
	data, err := s.imap.Search(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	return s.GetEmailDetails(data.AllSeqNums())
}

// GetEmailDetails fetches each message and assembles decoded headers
// plus a body preview. The session must have a mailbox selected.
func (s *Session) GetEmailDetails(seqNums []uint32) ([]Detail, error) {
	raws, err := s.fetchRaw(seqNums)
	if err != nil {
		return nil, err
	}

	details := make([]Detail, 0, len(raws))
	for _, r := range raws {
		details = append(details, Detail{
			Summary: summarize(r.seqNum, r.raw),
			Body:    extractPreview(r.raw),
		})
	}
	return details, nil
}

// MarkAsRead sets the \Seen flag on the given sequence number. When no
// mailbox is selected yet, the default mailbox is used.
func (s *Session) MarkAsRead(seqNum uint32) error {
	if err := s.ensureIMAP(); err != nil {
		return err
	}
	if s.selected == "" {
		if err := s.selectMailbox(DefaultMailbox); err != nil {
			return err
		}
	}

	seqSet := imap.SeqSetNum(seqNum)
	_, err := s.imap.Store(seqSet, &imap.StoreFlags{
		Op:    imap.StoreFlagsAdd,
		Flags: []imap.Flag{imap.FlagSeen},
	}, nil).Collect()
	if err != nil {
		return fmt.Errorf("failed to mark message %d as read: %w", seqNum, err)
	}
	return nil
}

// rawMessage pairs a sequence number with the full message bytes.
type rawMessage struct {
	seqNum uint32
	raw    []byte
}

// fetchRaw fetches the full raw message for each sequence number. Peek
// keeps the server from setting \Seen as a fetch side effect.
func (s *Session) fetchRaw(seqNums []uint32) ([]rawMessage, error) {
	if len(seqNums) == 0 {
		return nil, nil
	}

	var seqSet imap.SeqSet
	seqSet.AddNum(seqNums...)

	bodySection := &imap.FetchItemBodySection{Peek: true}
	msgs, err := s.imap.Fetch(seqSet, &imap.FetchOptions{
		BodySection: []*imap.FetchItemBodySection{bodySection},
	}).Collect()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	raws := make([]rawMessage, 0, len(msgs))
	for _, m := range msgs {
		raws = append(raws, rawMessage{
			seqNum: m.SeqNum,
			raw:    m.FindBodySection(bodySection),
		})
	}
	return raws, nil
}
